package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/middleware"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, _ := middleware.Caller(c)
	users, err := h.users.List(caller.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// MediaBuyers and PageBuilders back the assignment pickers on the
// dashboard.
func (h *UserHandler) MediaBuyers(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleMediaBuyer)
}

func (h *UserHandler) PageBuilders(c *fiber.Ctx) error {
	return h.listByRole(c, models.RolePageBuilder)
}

func (h *UserHandler) listByRole(c *fiber.Ctx, role models.Role) error {
	users, err := h.users.ListByRole(role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	user, err := h.users.Get(caller.UserID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	user, err := h.users.Create(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	caller, _ := middleware.Caller(c)
	user, err := h.users.Update(caller.UserID, id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	caller, _ := middleware.Caller(c)
	if err := h.users.Delete(caller.UserID, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
