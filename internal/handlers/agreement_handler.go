package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type AgreementHandler struct {
	service *services.AgreementService
}

func NewAgreementHandler(service *services.AgreementService) *AgreementHandler {
	return &AgreementHandler{service: service}
}

func (h *AgreementHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParseAgreement(c)
	if err != nil {
		return fail(c, err)
	}
	agreements, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AgreementListResponse{Agreements: agreements})
}

func (h *AgreementHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceAgreement)
	if err != nil {
		return fail(c, err)
	}
	agreement, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AgreementResponse{Agreement: agreement})
}

func (h *AgreementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	agreement, err := h.service.Create(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AgreementResponse{
		Message: "Agreement created successfully", Agreement: agreement,
	})
}

func (h *AgreementHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceAgreement)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	agreement, err := h.service.Update(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AgreementResponse{Message: "Agreement updated successfully", Agreement: agreement})
}

func (h *AgreementHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceAgreement)
	if err != nil {
		return fail(c, err)
	}
	if err := h.service.Delete(session.Principal(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Agreement deleted successfully"})
}

// Render returns the filled-in terms. ?format=html escapes the output for
// embedding in a page.
func (h *AgreementHandler) Render(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceAgreement)
	if err != nil {
		return fail(c, err)
	}
	rendered, err := h.service.Render(session.Principal(c), id, c.Query("format"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rendered)
}
