package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/services"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	caller, _ := middleware.Caller(c)
	products, err := h.products.List(caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	product, err := h.products.Get(caller, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	product, err := h.products.Create(caller, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	product, err := h.products.Update(caller, id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	if err := h.products.Delete(caller, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
