package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	domain "github.com/resmarka59/project-manager/domain/user"
	"github.com/resmarka59/project-manager/modules/auth"
	"github.com/resmarka59/project-manager/modules/project"
	"github.com/resmarka59/project-manager/modules/task"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	auth     auth.Port
	projects project.Port
	tasks    task.Port
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.Port, projectPort project.Port, taskPort task.Port) *Handlers {
	return &Handlers{
		auth:     authPort,
		projects: projectPort,
		tasks:    taskPort,
	}
}

// Register handles account registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body RegisterBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	resp, err := h.auth.Register(c.UserContext(), auth.RegisterRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body LoginBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	resp, err := h.auth.Login(c.UserContext(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Refresh handles token refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var body RefreshBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "Refresh token is required")
	}

	resp, err := h.auth.Refresh(c.UserContext(), auth.RefreshRequest{
		RefreshToken: body.RefreshToken,
	})
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid or expired refresh token",
		})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// caller returns the authenticated identity stored by the middleware.
func (h *Handlers) caller(c *fiber.Ctx) (*domain.Claims, bool) {
	claims, ok := c.Locals(UserContextKey).(*domain.Claims)
	return claims, ok
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthorized",
		Message: "User not authenticated",
	})
}

// respondError translates service errors into HTTP responses. Errors cross
// the service container as messages, so mapping is by known phrases.
func (h *Handlers) respondError(c *fiber.Ctx, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found",
		})
	case strings.Contains(msg, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid email or password",
		})
	case strings.Contains(msg, "already exists"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "User with this email already exists",
		})
	case strings.Contains(msg, "is required"),
		strings.Contains(msg, "invalid email format"),
		strings.Contains(msg, "password must be"):
		// Strip wrapping context, keep the validation phrase itself.
		if i := strings.LastIndex(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		return badRequest(c, msg)
	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
