package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port defines the interface other modules use to access task
// functionality.
type Port interface {
	List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error)
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Toggle(ctx context.Context, req ToggleTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, req DeleteTaskRequest) (DeleteTaskResponse, error)
	DueSoon(ctx context.Context, req DueSoonRequest) (DueSoonResponse, error)
}

// Adapter implements Port using the module's service container.
type Adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new task Adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{container: container}
}

// List fetches all tasks of a project.
func (a *Adapter) List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := call(ctx, a, "list", &req, &resp)
	return resp, err
}

// Create adds a task under a project.
func (a *Adapter) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a, "create", &req, &resp)
	return resp, err
}

// Toggle flips a task's completion status.
func (a *Adapter) Toggle(ctx context.Context, req ToggleTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a, "toggle", &req, &resp)
	return resp, err
}

// Delete removes a task.
func (a *Adapter) Delete(ctx context.Context, req DeleteTaskRequest) (DeleteTaskResponse, error) {
	var resp DeleteTaskResponse
	err := call(ctx, a, "delete", &req, &resp)
	return resp, err
}

// DueSoon fetches the caller's tasks due within the next seven days.
func (a *Adapter) DueSoon(ctx context.Context, req DueSoonRequest) (DueSoonResponse, error) {
	var resp DueSoonResponse
	err := call(ctx, a, "due-soon", &req, &resp)
	return resp, err
}

func call[T1 any, T2 any](ctx context.Context, a *Adapter, service string, req *T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx, a.container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return fmt.Errorf("task.%s request failed: %w", service, err)
	}
	return nil
}
