// Package tracker holds the project/task domain entities shared by the
// tracker modules.
package tracker

import (
	"time"
)

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	// StatusPending is the initial status of every task.
	StatusPending TaskStatus = "PENDING"
	// StatusCompleted marks a task as done.
	StatusCompleted TaskStatus = "COMPLETED"
)

// Toggle flips between the two statuses. There are no other transitions.
func (s TaskStatus) Toggle() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Project is a named container of tasks, owned by exactly one user.
// The owner is set at creation and never reassigned.
type Project struct {
	ID          string `gorm:"primaryKey;type:text"`
	Title       string `gorm:"not null;type:text"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      string `gorm:"index;not null;type:text"`
	Tasks       []Task `gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for the Project entity.
func (Project) TableName() string {
	return "projects"
}

// Task is a unit of work. It always belongs to exactly one project and
// cannot outlive it.
type Task struct {
	ID          string     `gorm:"primaryKey;type:text"`
	Title       string     `gorm:"not null;type:text"`
	Description string     `gorm:"type:text"`
	DueDate     Date       `gorm:"type:date;not null"`
	Status      TaskStatus `gorm:"not null;type:text;default:PENDING"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ProjectID   string `gorm:"index;not null;type:text"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
