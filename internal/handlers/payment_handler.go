package handlers

import (
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/dto"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/session"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	f, err := filter.ParsePayment(c)
	if err != nil {
		return fail(c, err)
	}
	payments, summary, err := h.service.List(session.Principal(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PaymentListResponse{RentPayments: payments, Summary: summary})
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourcePayment)
	if err != nil {
		return fail(c, err)
	}
	payment, err := h.service.Get(session.Principal(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PaymentResponse{RentPayment: payment})
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	payment, err := h.service.Create(session.Principal(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PaymentResponse{
		Message: "Rent payment created successfully", RentPayment: payment,
	})
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, access.ResourcePayment)
	if err != nil {
		return fail(c, err)
	}
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	payment, err := h.service.Update(session.Principal(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PaymentResponse{Message: "Rent payment updated successfully", RentPayment: payment})
}
