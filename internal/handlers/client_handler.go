package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/services"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clients.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	client, err := h.clients.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	client, err := h.clients.Create(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	client, err := h.clients.Update(id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.clients.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
