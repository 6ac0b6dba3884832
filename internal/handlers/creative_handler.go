package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/services"
)

type CreativeHandler struct {
	creatives *services.CreativeService
}

func NewCreativeHandler(creatives *services.CreativeService) *CreativeHandler {
	return &CreativeHandler{creatives: creatives}
}

func (h *CreativeHandler) List(c *fiber.Ctx) error {
	creatives, err := h.creatives.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(creatives)
}

func (h *CreativeHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	creative, err := h.creatives.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(creative)
}

func (h *CreativeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreativeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	creative, err := h.creatives.Create(caller, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creative)
}

func (h *CreativeHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.CreativeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	creative, err := h.creatives.Update(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(creative)
}

func (h *CreativeHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.creatives.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
