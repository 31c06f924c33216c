package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/resmarka59/project-manager/config"
	"github.com/resmarka59/project-manager/domain/tracker"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module provides task management services backed by GORM + SQLite.
type Module struct {
	cfg     *config.Config
	db      *gorm.DB
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new task Module.
func NewModule(cfg *config.Config) *Module {
	return &Module{cfg: cfg}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "task"
}

// Start initializes the database connection and runs migrations. The
// project module must be registered first so the projects table exists.
func (m *Module) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := m.db.AutoMigrate(&tracker.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.service = NewService(NewRepository(m.db))

	log.Printf("[task] Module started (database: %s)", m.cfg.DBPath)
	return nil
}

// Stop gracefully closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Println("[task] Module stopped")
	return nil
}

// Health performs a health check on the task module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.cfg.DBPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.task.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.handleList,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.handleCreate,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "toggle", json.Unmarshal, json.Marshal, m.handleToggle,
	); err != nil {
		return fmt.Errorf("failed to register toggle service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.handleDelete,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "due-soon", json.Unmarshal, json.Marshal, m.handleDueSoon,
	); err != nil {
		return fmt.Errorf("failed to register due-soon service: %w", err)
	}

	log.Printf("[task] Registered services: services.task.{list,create,toggle,delete,due-soon}")
	return nil
}

// handleList handles the task.list service request.
func (m *Module) handleList(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.ProjectID == "" {
		return ListTasksResponse{}, fmt.Errorf("project_id is required")
	}

	tasks, err := m.service.List(ctx, req.UserID, req.ProjectID)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return ListTasksResponse{
		Tasks: toTaskResponses(tasks),
		Total: len(tasks),
	}, nil
}

// handleCreate handles the task.create service request.
func (m *Module) handleCreate(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ProjectID == "" {
		return TaskResponse{}, fmt.Errorf("project_id is required")
	}

	task, err := m.service.Create(ctx, req.UserID, req.ProjectID, req.Title, req.Description, req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// handleToggle handles the task.toggle service request.
func (m *Module) handleToggle(ctx context.Context, req ToggleTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.TaskID == "" {
		return TaskResponse{}, fmt.Errorf("task_id is required")
	}

	task, err := m.service.Toggle(ctx, req.UserID, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// handleDelete handles the task.delete service request.
func (m *Module) handleDelete(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.TaskID == "" {
		return DeleteTaskResponse{Deleted: false}, fmt.Errorf("task_id is required")
	}

	if err := m.service.Delete(ctx, req.UserID, req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.TaskID}, err
	}
	return DeleteTaskResponse{Deleted: true, ID: req.TaskID}, nil
}

// handleDueSoon handles the task.due-soon service request.
func (m *Module) handleDueSoon(ctx context.Context, req DueSoonRequest, _ *mono.Msg) (DueSoonResponse, error) {
	if req.UserID == "" {
		return DueSoonResponse{}, fmt.Errorf("user_id is required")
	}

	tasks, err := m.service.DueSoon(ctx, req.UserID)
	if err != nil {
		return DueSoonResponse{}, err
	}
	return DueSoonResponse{
		Tasks: toTaskResponses(tasks),
		Total: len(tasks),
	}, nil
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(t *tracker.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		ProjectID:   t.ProjectID,
	}
}

func toTaskResponses(tasks []*tracker.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toTaskResponse(t))
	}
	return responses
}
