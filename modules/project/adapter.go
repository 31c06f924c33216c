package project

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port defines the interface other modules use to access project
// functionality.
type Port interface {
	List(ctx context.Context, req ListProjectsRequest) (ListProjectsResponse, error)
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Get(ctx context.Context, req GetProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, req DeleteProjectRequest) (DeleteProjectResponse, error)
}

// Adapter implements Port using the module's service container.
type Adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new project Adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{container: container}
}

// List fetches project summaries for a user.
func (a *Adapter) List(ctx context.Context, req ListProjectsRequest) (ListProjectsResponse, error) {
	var resp ListProjectsResponse
	err := call(ctx, a, "list", &req, &resp)
	return resp, err
}

// Create creates a project.
func (a *Adapter) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	var resp ProjectResponse
	err := call(ctx, a, "create", &req, &resp)
	return resp, err
}

// Get fetches a project by id.
func (a *Adapter) Get(ctx context.Context, req GetProjectRequest) (ProjectResponse, error) {
	var resp ProjectResponse
	err := call(ctx, a, "get", &req, &resp)
	return resp, err
}

// Update replaces a project's title and description.
func (a *Adapter) Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error) {
	var resp ProjectResponse
	err := call(ctx, a, "update", &req, &resp)
	return resp, err
}

// Delete removes a project and its tasks.
func (a *Adapter) Delete(ctx context.Context, req DeleteProjectRequest) (DeleteProjectResponse, error) {
	var resp DeleteProjectResponse
	err := call(ctx, a, "delete", &req, &resp)
	return resp, err
}

func call[T1 any, T2 any](ctx context.Context, a *Adapter, service string, req *T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx, a.container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return fmt.Errorf("project.%s request failed: %w", service, err)
	}
	return nil
}
