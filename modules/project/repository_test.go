package project

import (
	"testing"

	"github.com/google/uuid"
	"github.com/resmarka59/project-manager/domain/tracker"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&tracker.Project{}, &tracker.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestProject(userID string) *tracker.Project {
	return &tracker.Project{
		ID:          uuid.New().String(),
		Title:       "Test Project",
		Description: "A test project",
		UserID:      userID,
	}
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	project := newTestProject("user-1")
	if err := repo.Create(project); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var found tracker.Project
	if err := db.First(&found, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("failed to find created project: %v", err)
	}

	if found.Title != project.Title {
		t.Errorf("expected title %q, got %q", project.Title, found.Title)
	}
	if found.UserID != "user-1" {
		t.Errorf("expected owner user-1, got %q", found.UserID)
	}
	if found.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	project := newTestProject("user-1")
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	t.Run("existing project", func(t *testing.T) {
		found, err := repo.FindByID(project.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.ID != project.ID {
			t.Errorf("expected ID %q, got %q", project.ID, found.ID)
		}
	})

	t.Run("non-existent project", func(t *testing.T) {
		_, err := repo.FindByID("non-existent-id")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	mine := newTestProject("user-1")
	theirs := newTestProject("user-2")
	if err := db.Create(mine).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	if err := db.Create(theirs).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	task := &tracker.Task{
		ID:        uuid.New().String(),
		Title:     "Task A",
		DueDate:   tracker.Today(),
		Status:    tracker.StatusPending,
		ProjectID: mine.ID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}

	projects, err := repo.FindByUserID("user-1")
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ID != mine.ID {
		t.Errorf("expected project %q, got %q", mine.ID, projects[0].ID)
	}
	if len(projects[0].Tasks) != 1 {
		t.Errorf("expected tasks preloaded, got %d tasks", len(projects[0].Tasks))
	}
}

func TestRepository_UpdateDetails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	project := newTestProject("user-1")
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	t.Run("update existing project", func(t *testing.T) {
		if err := repo.UpdateDetails(project.ID, "New Title", ""); err != nil {
			t.Fatalf("UpdateDetails() error = %v", err)
		}

		var found tracker.Project
		if err := db.First(&found, "id = ?", project.ID).Error; err != nil {
			t.Fatalf("failed to find updated project: %v", err)
		}
		if found.Title != "New Title" {
			t.Errorf("expected title %q, got %q", "New Title", found.Title)
		}
		if found.Description != "" {
			t.Errorf("expected description cleared, got %q", found.Description)
		}
		if found.UserID != project.UserID {
			t.Errorf("expected owner preserved, got %q", found.UserID)
		}
		if !found.CreatedAt.Equal(project.CreatedAt) {
			t.Errorf("expected CreatedAt preserved, got %v", found.CreatedAt)
		}
	})

	t.Run("update non-existent project", func(t *testing.T) {
		err := repo.UpdateDetails("non-existent-id", "Title", "")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	project := newTestProject("user-1")
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	for i := 0; i < 3; i++ {
		task := &tracker.Task{
			ID:        uuid.New().String(),
			Title:     "Task",
			DueDate:   tracker.Today(),
			Status:    tracker.StatusPending,
			ProjectID: project.ID,
		}
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("failed to create test task: %v", err)
		}
	}

	t.Run("delete cascades to tasks", func(t *testing.T) {
		if err := repo.Delete(project.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		var projectCount int64
		db.Model(&tracker.Project{}).Where("id = ?", project.ID).Count(&projectCount)
		if projectCount != 0 {
			t.Errorf("expected project deleted, found %d rows", projectCount)
		}

		var taskCount int64
		db.Model(&tracker.Task{}).Where("project_id = ?", project.ID).Count(&taskCount)
		if taskCount != 0 {
			t.Errorf("expected no orphaned tasks, found %d rows", taskCount)
		}
	})

	t.Run("delete non-existent project", func(t *testing.T) {
		err := repo.Delete("non-existent-id")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
