package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/services"
)

type VoiceOverHandler struct {
	voiceOvers *services.VoiceOverService
}

func NewVoiceOverHandler(voiceOvers *services.VoiceOverService) *VoiceOverHandler {
	return &VoiceOverHandler{voiceOvers: voiceOvers}
}

func (h *VoiceOverHandler) List(c *fiber.Ctx) error {
	voiceOvers, err := h.voiceOvers.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(voiceOvers)
}

func (h *VoiceOverHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	voiceOver, err := h.voiceOvers.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(voiceOver)
}

func (h *VoiceOverHandler) Create(c *fiber.Ctx) error {
	var req dto.VoiceOverRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	voiceOver, err := h.voiceOvers.Create(caller, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(voiceOver)
}

func (h *VoiceOverHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.VoiceOverRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	voiceOver, err := h.voiceOvers.Update(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(voiceOver)
}

func (h *VoiceOverHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.voiceOvers.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
