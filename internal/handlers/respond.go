package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/services"
)

// writeError maps service failures onto the response taxonomy:
// field-level validation -> 400, missing rows -> 404, integrity
// violations -> 409, anything else an opaque 500 that is logged but
// not leaked.
func writeError(c *fiber.Ctx, err error) error {
	var fields dto.FieldErrors
	switch {
	case errors.As(err, &fields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{
			Error: true, Fields: fields,
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	case foreignKeyViolated(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "Conflict: row is referenced by other records",
		})
	default:
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID(c),
			"error", err.Error(),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

// foreignKeyViolated recognizes a constraint the service layer did not
// resolve itself, e.g. deleting a row other records still point at.
func foreignKeyViolated(err error) bool {
	var pgErr *pgconn.PgError
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		(errors.As(err, &pgErr) && pgErr.Code == "23503")
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "Not found",
	})
}

// pathID parses the :id parameter. Ids are opaque UUIDs; anything else
// cannot name a row, so the route answers 404 like a miss.
func pathID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func requestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals("requestid").(string); ok {
		return rid
	}
	return ""
}
