package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/policy"
)

// Authorize gates one route group on the access policy. The action is
// derived from the HTTP verb; GET counts as view when the request
// addresses a single row and list otherwise. Row-level narrowing stays
// in the services.
func Authorize(resource policy.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := Caller(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !policy.Allow(caller.Role, resource, actionFor(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		}
		return c.Next()
	}
}

func actionFor(c *fiber.Ctx) policy.Action {
	switch c.Method() {
	case fiber.MethodPost:
		return policy.ActionCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return policy.ActionUpdate
	case fiber.MethodDelete:
		return policy.ActionDelete
	default:
		if isDetailPath(c.Path()) {
			return policy.ActionView
		}
		return policy.ActionList
	}
}

// isDetailPath reports whether the request addresses a single row.
// Detail routes end in the row id. Group-mounted middleware runs with
// no route params of its own, so the id has to be read off the raw
// request path.
func isDetailPath(path string) bool {
	path = strings.TrimRight(path, "/")
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return false
	}
	_, err := uuid.Parse(path[i+1:])
	return err == nil
}
