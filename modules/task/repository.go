package task

import (
	"errors"
	"fmt"

	"github.com/resmarka59/project-manager/domain/tracker"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a task is not found.
	ErrNotFound = errors.New("task not found")
	// ErrProjectNotFound is returned when the referenced project does not
	// resolve.
	ErrProjectNotFound = errors.New("project not found")
)

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database.
func (r *Repository) Create(task *tracker.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(id string) (*tracker.Task, error) {
	var task tracker.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindByProjectID retrieves all tasks belonging to a project.
func (r *Repository) FindByProjectID(projectID string) ([]*tracker.Task, error) {
	var tasks []*tracker.Task
	if err := r.db.Find(&tasks, "project_id = ?", projectID).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save persists changes to an existing task.
func (r *Repository) Save(task *tracker.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task by ID.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&tracker.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindDueSoon returns all not-completed tasks of the user's projects with a
// due date inside [start, end] inclusive. Dates persist as YYYY-MM-DD text,
// so BETWEEN compares correctly.
func (r *Repository) FindDueSoon(userID string, start, end tracker.Date) ([]*tracker.Task, error) {
	var tasks []*tracker.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.user_id = ?", userID).
		Where("tasks.status <> ?", tracker.StatusCompleted).
		Where("tasks.due_date BETWEEN ? AND ?", start, end).
		Order("tasks.due_date").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find due-soon tasks: %w", err)
	}
	return tasks, nil
}

// FindProject resolves the owning project of a task operation.
func (r *Repository) FindProject(id string) (*tracker.Project, error) {
	var project tracker.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}
