package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParseDocument(c)
	if err != nil {
		return fail(c, err)
	}
	documents, summary, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DocumentListResponse{Documents: documents, Summary: summary})
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceDocument)
	if err != nil {
		return fail(c, err)
	}
	document, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DocumentResponse{Document: document})
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	document, err := h.service.Upload(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DocumentResponse{
		Message: "Document uploaded successfully", Document: document,
	})
}

func (h *DocumentHandler) Review(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceDocument)
	if err != nil {
		return fail(c, err)
	}
	var req dto.ReviewDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	document, err := h.service.Review(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DocumentResponse{Message: "Document verification status updated", Document: document})
}
