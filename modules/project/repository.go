package project

import (
	"errors"
	"fmt"

	"github.com/resmarka59/project-manager/domain/tracker"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a project is not found.
var ErrNotFound = errors.New("project not found")

// Repository provides access to project storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new project repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new project to the database.
func (r *Repository) Create(project *tracker.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByID retrieves a project by its ID.
func (r *Repository) FindByID(id string) (*tracker.Project, error) {
	var project tracker.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}

// FindByUserID retrieves all projects owned by a user, with their tasks
// loaded so progress can be derived.
func (r *Repository) FindByUserID(userID string) ([]*tracker.Project, error) {
	var projects []*tracker.Project
	if err := r.db.Preload("Tasks").Find(&projects, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find projects: %w", err)
	}
	return projects, nil
}

// UpdateDetails replaces a project's title and description. Owner, id and
// creation timestamp are untouched.
func (r *Repository) UpdateDetails(id, title, description string) error {
	result := r.db.Model(&tracker.Project{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"description": description,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project and all of its tasks in one transaction, so no
// orphaned task rows can remain.
func (r *Repository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&tracker.Project{}, "id = ?", id)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Delete(&tracker.Task{}, "project_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete project tasks: %w", err)
		}
		return nil
	})
}
