package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resmarka59/project-manager/modules/project"
)

// ListProjects returns the caller's projects with derived progress.
func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.projects.List(c.UserContext(), project.ListProjectsRequest{
		UserID: claims.UserID,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateProject creates a project bound to the caller.
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	var body ProjectBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.projects.Create(c.UserContext(), project.CreateProjectRequest{
		UserID:      claims.UserID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProject returns a single project by id.
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	resp, err := h.projects.Get(c.UserContext(), project.GetProjectRequest{
		ID:     c.Params("id"),
		UserID: claims.UserID,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// UpdateProject replaces a project's title and description.
func (h *Handlers) UpdateProject(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	var body ProjectBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.projects.Update(c.UserContext(), project.UpdateProjectRequest{
		ID:          c.Params("id"),
		UserID:      claims.UserID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteProject deletes a project and all of its tasks.
func (h *Handlers) DeleteProject(c *fiber.Ctx) error {
	claims, ok := h.caller(c)
	if !ok {
		return unauthenticated(c)
	}

	if _, err := h.projects.Delete(c.UserContext(), project.DeleteProjectRequest{
		ID:     c.Params("id"),
		UserID: claims.UserID,
	}); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
