package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/services"
)

func errorStatus(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if reqErr != nil {
		t.Fatalf("request: %v", reqErr)
	}
	return resp.StatusCode
}

func TestWriteErrorMapping(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "fk_clients_user"}
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"field errors", dto.FieldErrors{"email": "Enter a valid email address."}, fiber.StatusBadRequest},
		{"not found", services.ErrNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get user: %w", services.ErrNotFound), fiber.StatusNotFound},
		{"foreign key violation", fkViolation, fiber.StatusConflict},
		{"wrapped foreign key violation", fmt.Errorf("delete user: %w", fkViolation), fiber.StatusConflict},
		{"unexpected failure", errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := errorStatus(t, tc.err); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, got, tc.want)
		}
	}
}
