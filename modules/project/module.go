package project

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

// Module provides project management services backed by GORM + SQLite.
type Module struct {
	cfg     *config.Config
	db      *gorm.DB
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new project Module.
func NewModule(cfg *config.Config) *Module {
	return &Module{cfg: cfg}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "project"
}

// Start initializes the database connection and runs migrations.
func (m *Module) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := m.db.AutoMigrate(&tracker.Project{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.service = NewService(NewRepository(m.db))

	log.Printf("[project] Module started (database: %s)", m.cfg.DBPath)
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
	log.Println("[project] Module stopped")
	return nil
}

// Health performs a health check on the project module.
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
// The framework prefixes service names with "services.project.".
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
		container, "get", json.Unmarshal, json.Marshal, m.handleGet,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.handleUpdate,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.handleDelete,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[project] Registered services: services.project.{list,create,get,update,delete}")
	return nil
}

// handleList handles the project.list service request.
func (m *Module) handleList(ctx context.Context, req ListProjectsRequest, _ *mono.Msg) (ListProjectsResponse, error) {
	if req.UserID == "" {
		return ListProjectsResponse{}, fmt.Errorf("user_id is required")
	}

	summaries, err := m.service.List(ctx, req.UserID)
	if err != nil {
		return ListProjectsResponse{}, err
	}

	return ListProjectsResponse{
		Projects: summaries,
		Total:    len(summaries),
	}, nil
}

// handleCreate handles the project.create service request.
func (m *Module) handleCreate(ctx context.Context, req CreateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	if req.UserID == "" {
		return ProjectResponse{}, fmt.Errorf("user_id is required")
	}

	project, err := m.service.Create(ctx, req.UserID, req.Title, req.Description)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

// handleGet handles the project.get service request.
func (m *Module) handleGet(ctx context.Context, req GetProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	if req.ID == "" {
		return ProjectResponse{}, fmt.Errorf("id is required")
	}

	project, err := m.service.Get(ctx, req.UserID, req.ID)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

// handleUpdate handles the project.update service request.
func (m *Module) handleUpdate(ctx context.Context, req UpdateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	if req.ID == "" {
		return ProjectResponse{}, fmt.Errorf("id is required")
	}

	project, err := m.service.Update(ctx, req.UserID, req.ID, req.Title, req.Description)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(project), nil
}

// handleDelete handles the project.delete service request.
func (m *Module) handleDelete(ctx context.Context, req DeleteProjectRequest, _ *mono.Msg) (DeleteProjectResponse, error) {
	if req.ID == "" {
		return DeleteProjectResponse{Deleted: false}, fmt.Errorf("id is required")
	}

	if err := m.service.Delete(ctx, req.UserID, req.ID); err != nil {
		return DeleteProjectResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteProjectResponse{Deleted: true, ID: req.ID}, nil
}

// toProjectResponse converts a Project entity to a ProjectResponse.
func toProjectResponse(p *tracker.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
