package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	caller, _ := middleware.Caller(c)
	payments, err := h.payments.List(caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	payment, err := h.payments.Get(caller, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	payment, err := h.payments.Create(caller, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	payment, err := h.payments.Update(caller, id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	if err := h.payments.Delete(caller, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
