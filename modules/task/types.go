package task

import (
	"github.com/resmarka59/project-manager/domain/tracker"
)

// ListTasksRequest is the request for listing the tasks of a project.
type ListTasksRequest struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

// TaskResponse represents a task in responses. It carries the owning
// project's id rather than an embedded project, so the wire shape has no
// cycle back into the project's task list.
type TaskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	DueDate     tracker.Date       `json:"due_date"`
	Status      tracker.TaskStatus `json:"status"`
	ProjectID   string             `json:"project_id"`
}

// ListTasksResponse is the response containing a list of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// CreateTaskRequest is the request for creating a task under a project.
// Status is accepted on the wire but ignored: every task starts PENDING.
type CreateTaskRequest struct {
	ProjectID   string       `json:"project_id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     tracker.Date `json:"due_date"`
	Status      string       `json:"status,omitempty"`
}

// ToggleTaskRequest is the request for flipping a task's status.
type ToggleTaskRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// DueSoonRequest is the request for the due-soon query.
type DueSoonRequest struct {
	UserID string `json:"user_id"`
}

// DueSoonResponse is the response containing tasks due within the window.
type DueSoonResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}
