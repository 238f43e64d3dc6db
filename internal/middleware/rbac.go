package middleware

import (
	"slices"

	"go-marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through only when the current user has one
// of the given roles. It must run after AuthMiddleware.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !slices.Contains(roles, user.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient role",
			})
		}

		return c.Next()
	}
}
