package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

func (h *TenantHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParseTenant(c)
	if err != nil {
		return fail(c, err)
	}
	tenants, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TenantListResponse{Tenants: tenants})
}

// Create invites a tenant: 201 when a user or profile was created, 200 when
// the email already belonged to a tenant.
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	inv, err := h.service.Invite(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	if !inv.Created {
		return c.JSON(dto.TenantResponse{Message: "Tenant already exists", Tenant: inv.Tenant})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TenantResponse{
		Message:           "Tenant created successfully",
		Tenant:            inv.Tenant,
		TemporaryPassword: inv.TemporaryPassword,
	})
}

func (h *TenantHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceTenant)
	if err != nil {
		return fail(c, err)
	}
	tenant, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TenantResponse{Tenant: tenant})
}

func (h *TenantHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceTenant)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tenant, err := h.service.Update(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.TenantResponse{Message: "Tenant updated successfully", Tenant: tenant})
}

func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceTenant)
	if err != nil {
		return fail(c, err)
	}
	if err := h.service.Delete(session.Principal(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Tenant deleted successfully"})
}
