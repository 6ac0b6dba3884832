package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/services"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
}

func NewCampaignHandler(campaigns *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.campaigns.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(campaigns)
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	campaign, err := h.campaigns.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	campaign, err := h.campaigns.Create(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	campaign, err := h.campaigns.Update(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.campaigns.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
