package project

import "time"

// ListProjectsRequest is the request for listing a user's projects.
type ListProjectsRequest struct {
	UserID string `json:"user_id"`
}

// ProjectSummary is a project enriched with derived progress figures.
// Progress is recomputed on every read, never persisted.
type ProjectSummary struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	TotalTasks         int       `json:"total_tasks"`
	CompletedTasks     int       `json:"completed_tasks"`
	ProgressPercentage float64   `json:"progress_percentage"`
}

// ListProjectsResponse is the response containing project summaries.
type ListProjectsResponse struct {
	Projects []ProjectSummary `json:"projects"`
	Total    int              `json:"total"`
}

// CreateProjectRequest is the request for creating a project. The project
// is always bound to UserID, the caller's identity.
type CreateProjectRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectResponse represents a project in responses.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetProjectRequest is the request for getting a project by id.
type GetProjectRequest struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

// UpdateProjectRequest is the request for replacing a project's title and
// description. No other field is mutable.
type UpdateProjectRequest struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DeleteProjectRequest is the request for deleting a project.
type DeleteProjectRequest struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

// DeleteProjectResponse is the response after deleting a project.
type DeleteProjectResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
