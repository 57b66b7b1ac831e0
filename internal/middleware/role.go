package middleware

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

// RequireRole admits callers whose token carries role. Use it only on
// routes without an entity id, where no existence check must come first.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := session.Principal(c)
		if !p.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		if p.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Forbidden"})
		}
		return c.Next()
	}
}
