package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type RentalHandler struct {
	service *services.RentalService
}

func NewRentalHandler(service *services.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParseRental(c)
	if err != nil {
		return fail(c, err)
	}
	rentals, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.RentalListResponse{Rentals: rentals})
}

func (h *RentalHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceRental)
	if err != nil {
		return fail(c, err)
	}
	rental, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.RentalResponse{Rental: rental})
}

func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	rental, err := h.service.Create(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RentalResponse{
		Message: "Rental created successfully", Rental: rental,
	})
}

func (h *RentalHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourceRental)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	rental, err := h.service.Update(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.RentalResponse{Message: "Rental updated successfully", Rental: rental})
}
