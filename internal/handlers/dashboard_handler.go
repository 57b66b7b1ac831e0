package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Tenant(c *fiber.Ctx) error {
	out, err := h.service.Tenant(session.Principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *DashboardHandler) Landlord(c *fiber.Ctx) error {
	out, err := h.service.Landlord(session.Principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
