package dto

import (
	"github.com/google/uuid"

	"github.com/agencyops/backoffice-api/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenResponse carries the rotated token pair. The caller's role is
// included so the dashboard can pick its layout before any other call.
type TokenResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	Role    models.Role `json:"role"`
	UserID  uuid.UUID   `json:"user_id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
