package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/config"
	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

const callerKey = "caller"

// JWTProtected rejects requests without a valid bearer token before
// any handler runs.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// LoadCaller resolves the token subject against the user table and
// stores an explicit policy.Caller in the request context. The role is
// read from the row, not the token, so a role change takes effect on
// the next request.
func LoadCaller(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := subjectID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		caller := policy.Caller{UserID: user.ID, Role: user.Role}
		if user.Role == models.RoleClient {
			var client models.Client
			if err := db.First(&client, "user_id = ?", user.ID).Error; err == nil {
				caller.ClientID = &client.ID
			}
		}

		c.Locals(callerKey, caller)
		return c.Next()
	}
}

// Caller returns the identity stored by LoadCaller.
func Caller(c *fiber.Ctx) (policy.Caller, bool) {
	caller, ok := c.Locals(callerKey).(policy.Caller)
	return caller, ok
}

func subjectID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("missing token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}
