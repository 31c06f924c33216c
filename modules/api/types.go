package api

import (
	"github.com/resmarka59/project-manager/domain/tracker"
)

// RegisterBody is the request body for account registration.
type RegisterBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginBody is the request body for login.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshBody is the request body for token refresh.
type RefreshBody struct {
	RefreshToken string `json:"refresh_token"`
}

// ProjectBody is the request body for creating or updating a project.
type ProjectBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskBody is the request body for creating a task. A status supplied here
// is ignored; tasks always start PENDING.
type TaskBody struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     tracker.Date `json:"due_date"`
	Status      string       `json:"status,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
