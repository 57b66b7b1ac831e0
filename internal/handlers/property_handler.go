package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParseProperty(c)
	if err != nil {
		return fail(c, err)
	}
	properties, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PropertyListResponse{Properties: properties})
}

func (h *PropertyHandler) Available(c *fiber.Ctx) error {
	f, err := filter.ParseAvailable(c)
	if err != nil {
		return fail(c, err)
	}
	properties, err := h.service.Available(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PropertyListResponse{Properties: properties})
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceProperty)
	if err != nil {
		return fail(c, err)
	}
	property, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PropertyResponse{Property: property})
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	property, err := h.service.Create(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PropertyResponse{
		Message: "Property created successfully", Property: property,
	})
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceProperty)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	property, err := h.service.Update(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PropertyResponse{Message: "Property updated successfully", Property: property})
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceProperty)
	if err != nil {
		return fail(c, err)
	}
	if err := h.service.Delete(session.Principal(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Property deleted successfully"})
}
