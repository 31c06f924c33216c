package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resmarka59/project-manager/modules/task"
)

// DueSoonTasks returns the caller's not-completed tasks due within the
// next seven days.
func (h *Handlers) DueSoonTasks(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasks.DueSoon(c.UserContext(), task.DueSoonRequest{
		UserID: claims.UserID,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// ListTasks returns the tasks of a project.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasks.List(c.UserContext(), task.ListTasksRequest{
		ProjectID: c.Params("projectId"),
		UserID:    claims.UserID,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateTask adds a task under a project. The status always starts PENDING
// regardless of the request body.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.tasks.Create(c.UserContext(), task.CreateTaskRequest{
		ProjectID:   c.Params("projectId"),
		UserID:      claims.UserID,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ToggleTask flips a task between PENDING and COMPLETED.
func (h *Handlers) ToggleTask(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.tasks.Toggle(c.UserContext(), task.ToggleTaskRequest{
		TaskID: c.Params("taskId"),
		UserID: claims.UserID,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteTask removes a task.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	if _, err := h.tasks.Delete(c.UserContext(), task.DeleteTaskRequest{
		TaskID: c.Params("taskId"),
		UserID: claims.UserID,
	}); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
