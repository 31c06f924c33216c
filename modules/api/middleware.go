package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/resmarka59/project-manager/modules/auth"
)

const (
	// UserContextKey is the key used to store the caller identity in the
	// Fiber context.
	UserContextKey = "user"
)

// AuthMiddleware validates the bearer token and resolves the caller's user
// record. A valid token for a deleted account is rejected, so every handler
// behind this middleware can rely on the identity existing.
func AuthMiddleware(authPort auth.Port) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Token is required",
			})
		}

		claims, err := authPort.ValidateToken(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
		}

		if _, err := authPort.GetUser(c.UserContext(), claims.UserID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Account could not be resolved",
			})
		}

		c.Locals(UserContextKey, claims)
		return c.Next()
	}
}
