package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/resmarka59/project-manager/domain/tracker"
)

// ErrTitleRequired is returned when a project title is missing.
var ErrTitleRequired = errors.New("title is required")

// Service handles project business logic.
type Service struct {
	repo *Repository
}

// NewService creates a new project Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns summaries of all projects owned by the user, each with its
// task counts and progress percentage.
func (s *Service) List(_ context.Context, userID string) ([]ProjectSummary, error) {
	projects, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, summarize(p))
	}
	return summaries, nil
}

// Create persists a new project bound to the given user. Any owner supplied
// by the caller elsewhere is irrelevant; ownership comes from the
// authenticated identity alone.
func (s *Service) Create(_ context.Context, userID, title, description string) (*tracker.Project, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	project := &tracker.Project{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

// Get returns a project by id. A project owned by another user reports
// not-found, so ids don't leak across accounts.
func (s *Service) Get(_ context.Context, userID, id string) (*tracker.Project, error) {
	return s.findOwned(userID, id)
}

// Update replaces the project's title and description. Id, owner and
// creation timestamp are preserved.
func (s *Service) Update(_ context.Context, userID, id, title, description string) (*tracker.Project, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	project, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDetails(project.ID, title, description); err != nil {
		return nil, err
	}
	project.Title = title
	project.Description = description
	return project, nil
}

// Delete removes the project and, transitively, all of its tasks.
func (s *Service) Delete(_ context.Context, userID, id string) error {
	project, err := s.findOwned(userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(project.ID)
}

func (s *Service) findOwned(userID, id string) (*tracker.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrNotFound
	}
	return project, nil
}

// summarize derives the progress figures for one project.
func summarize(p *tracker.Project) ProjectSummary {
	total := len(p.Tasks)
	completed := 0
	for _, t := range p.Tasks {
		if t.Status == tracker.StatusCompleted {
			completed++
		}
	}

	progress := 0.0
	if total > 0 {
		progress = float64(completed) / float64(total) * 100
	}

	return ProjectSummary{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		CreatedAt:          p.CreatedAt,
		TotalTasks:         total,
		CompletedTasks:     completed,
		ProgressPercentage: progress,
	}
}
