package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/resmarka59/project-manager/domain/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewService(NewRepository(db)), db
}

func addTask(t *testing.T, db *gorm.DB, projectID string, status tracker.TaskStatus) {
	t.Helper()
	task := &tracker.Task{
		ID:        uuid.New().String(),
		Title:     "Task",
		DueDate:   tracker.Today(),
		Status:    status,
		ProjectID: projectID,
	}
	require.NoError(t, db.Create(task).Error)
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("binds project to caller", func(t *testing.T) {
		project, err := svc.Create(ctx, "user-1", "Launch", "")
		require.NoError(t, err)

		assert.NotEmpty(t, project.ID)
		assert.Equal(t, "user-1", project.UserID)
		assert.Equal(t, "Launch", project.Title)
		assert.False(t, project.CreatedAt.IsZero())
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", "", "desc")
		assert.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestService_List_ProgressEmptyProject(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	empty, err := svc.Create(ctx, "user-1", "Empty", "")
	require.NoError(t, err)

	// Completed tasks elsewhere must not affect an empty project.
	other, err := svc.Create(ctx, "user-1", "Other", "")
	require.NoError(t, err)
	addTask(t, db, other.ID, tracker.StatusCompleted)

	summaries, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	for _, s := range summaries {
		if s.ID == empty.ID {
			assert.Equal(t, 0, s.TotalTasks)
			assert.Equal(t, 0, s.CompletedTasks)
			assert.Equal(t, 0.0, s.ProgressPercentage)
		}
	}
}

func TestService_List_ProgressFraction(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-1", "Launch", "")
	require.NoError(t, err)

	addTask(t, db, project.ID, tracker.StatusCompleted)
	addTask(t, db, project.ID, tracker.StatusPending)
	addTask(t, db, project.ID, tracker.StatusPending)

	summaries, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.InDelta(t, 100.0/3.0, s.ProgressPercentage, 1e-9)
}

func TestService_Get_OwnershipMasking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-1", "Private", "")
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		found, err := svc.Get(ctx, "user-1", project.ID)
		require.NoError(t, err)
		assert.Equal(t, project.ID, found.ID)
	})

	t.Run("foreign project reports not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "user-2", project.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "user-1", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Update(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-1", "Original", "keep me")
	require.NoError(t, err)

	t.Run("replaces title and description only", func(t *testing.T) {
		updated, err := svc.Update(ctx, "user-1", project.ID, "Renamed", "keep me")
		require.NoError(t, err)
		assert.Equal(t, project.ID, updated.ID)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "keep me", updated.Description)

		var found tracker.Project
		require.NoError(t, db.First(&found, "id = ?", project.ID).Error)
		assert.Equal(t, "Renamed", found.Title)
		assert.Equal(t, "keep me", found.Description)
		assert.Equal(t, "user-1", found.UserID)
		assert.True(t, found.CreatedAt.Equal(project.CreatedAt))
	})

	t.Run("foreign project reports not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "user-2", project.ID, "Hijack", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := svc.Update(ctx, "user-1", project.ID, "", "")
		assert.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestService_Delete(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-1", "Doomed", "")
	require.NoError(t, err)
	addTask(t, db, project.ID, tracker.StatusPending)

	t.Run("foreign project reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, "user-2", project.ID), ErrNotFound)
	})

	t.Run("owner deletes project and tasks", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "user-1", project.ID))

		var taskCount int64
		db.Model(&tracker.Task{}).Where("project_id = ?", project.ID).Count(&taskCount)
		assert.Zero(t, taskCount)
	})

	t.Run("missing id fails loudly", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, "user-1", project.ID), ErrNotFound)
	})
}

// Mirrors the end-to-end flow of creating a project, working its tasks and
// reading the dashboard summary.
func TestService_LaunchScenario(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, "user-1", "Launch", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		addTask(t, db, project.ID, tracker.StatusPending)
	}

	// Complete one of the three tasks.
	var task tracker.Task
	require.NoError(t, db.First(&task, "project_id = ?", project.ID).Error)
	task.Status = task.Status.Toggle()
	require.NoError(t, db.Save(&task).Error)

	summaries, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Launch", s.Title)
	assert.Empty(t, s.Description)
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.InDelta(t, 33.33, s.ProgressPercentage, 0.01)
}
