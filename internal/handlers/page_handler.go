package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/services"
)

type PageHandler struct {
	pages *services.PageService
}

func NewPageHandler(pages *services.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

func (h *PageHandler) List(c *fiber.Ctx) error {
	pages, err := h.pages.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pages)
}

func (h *PageHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	page, err := h.pages.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

func (h *PageHandler) Create(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	page, err := h.pages.Create(caller, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func (h *PageHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	page, err := h.pages.Update(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(page)
}

func (h *PageHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.pages.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
