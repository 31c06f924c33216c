package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/resmarka59/project-manager/domain/tracker"
)

// dueSoonWindowDays is the size of the due-soon lookahead, today inclusive
// on both ends.
const dueSoonWindowDays = 7

var (
	// ErrTitleRequired is returned when a task title is missing.
	ErrTitleRequired = errors.New("title is required")
	// ErrDueDateRequired is returned when a task due date is missing.
	ErrDueDateRequired = errors.New("due_date is required")
)

// Service handles task business logic.
type Service struct {
	repo *Repository
}

// NewService creates a new task Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns all tasks of the given project.
func (s *Service) List(_ context.Context, userID, projectID string) ([]*tracker.Task, error) {
	if _, err := s.findOwnedProject(userID, projectID); err != nil {
		return nil, err
	}
	return s.repo.FindByProjectID(projectID)
}

// Create adds a task under a project. Whatever status the caller supplied
// is discarded: every task starts PENDING.
func (s *Service) Create(_ context.Context, userID, projectID, title, description string, dueDate tracker.Date) (*tracker.Task, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if dueDate.IsZero() {
		return nil, ErrDueDateRequired
	}

	project, err := s.findOwnedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	task := &tracker.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      tracker.StatusPending,
		ProjectID:   project.ID,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

// Toggle flips the task between PENDING and COMPLETED.
func (s *Service) Toggle(_ context.Context, userID, taskID string) (*tracker.Task, error) {
	task, err := s.findOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = task.Status.Toggle()
	if err := s.repo.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task. A missing id fails loudly.
func (s *Service) Delete(_ context.Context, userID, taskID string) error {
	task, err := s.findOwnedTask(userID, taskID)
	if err != nil {
		return err
	}
	return s.repo.Delete(task.ID)
}

// DueSoon returns the user's not-completed tasks due within the next seven
// days, today and the seventh day inclusive.
func (s *Service) DueSoon(_ context.Context, userID string) ([]*tracker.Task, error) {
	today := tracker.Today()
	return s.repo.FindDueSoon(userID, today, today.AddDays(dueSoonWindowDays))
}

func (s *Service) findOwnedProject(userID, projectID string) (*tracker.Project, error) {
	project, err := s.repo.FindProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) findOwnedTask(userID, taskID string) (*tracker.Task, error) {
	task, err := s.repo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	// Ownership runs through the task's project.
	if _, err := s.findOwnedProject(userID, task.ProjectID); err != nil {
		return nil, ErrNotFound
	}
	return task, nil
}
