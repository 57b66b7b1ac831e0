package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fail writes err as {"error": ...} with the status its kind maps to.
// Unexpected errors are logged and hidden behind a generic message.
func fail(c *fiber.Ctx, err error) error {
	var ve *validation.Error
	var nf *access.NotFoundError

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Message})
	case services.IsRuleViolation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, access.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: unauthorizedMessage(err)})
	case errors.Is(err, access.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Forbidden"})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: capitalize(nf.Error())})
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
	}

	p := session.Principal(c)
	slog.Error("request failed",
		"request_id", requestID(c),
		"user_id", p.UserID.String(),
		"role", string(p.Role),
		"action", c.Method()+" "+c.Route().Path,
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
}

// pathID parses the :id route parameter. A malformed id cannot name a row
// of r, so it is reported as not found.
func pathID(c *fiber.Ctx, r access.Resource) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, access.NotFound(r)
	}
	return id, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

func unauthorizedMessage(err error) string {
	if errors.Is(err, access.ErrUnauthenticated) {
		return "Unauthorized"
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
