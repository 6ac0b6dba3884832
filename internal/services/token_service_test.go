package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/agencyops/backoffice-api/internal/config"
	"github.com/agencyops/backoffice-api/internal/models"
)

func TestAccessTokenClaims(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	svc := NewTokenService(nil, cfg)

	user := &models.User{
		ID:    uuid.New(),
		Email: "buyer@agency.test",
		Role:  models.RoleMediaBuyer,
	}

	signed, err := svc.AccessToken(user)
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected a valid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if got := claims["sub"]; got != user.ID.String() {
		t.Errorf("sub = %v, want %s", got, user.ID)
	}
	if got := claims["email"]; got != user.Email {
		t.Errorf("email = %v, want %s", got, user.Email)
	}
	if got := claims["role"]; got != string(models.RoleMediaBuyer) {
		t.Errorf("role = %v, want %s", got, models.RoleMediaBuyer)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing or not numeric: %v", claims["exp"])
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 || remaining > cfg.JWTAccessExpiry+time.Minute {
		t.Errorf("exp %v from now, want about %v", remaining, cfg.JWTAccessExpiry)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	svc := NewTokenService(nil, cfg)

	signed, err := svc.AccessToken(&models.User{ID: uuid.New(), Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatal("expected verification failure with the wrong secret")
	}
}

// Rotation must abort when the revocation touches no row: either the
// write failed or a concurrent refresh consumed the token first. A
// dry-run session never executes, so zero rows are ever affected.
func TestRevokeFailsWhenNoRowTouched(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}
	svc := NewTokenService(db, &config.Config{JWTSecret: "test-secret"})

	stored := &models.RefreshToken{ID: uuid.New(), UserID: uuid.New()}
	if err := svc.revoke(stored); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("revoke with no row touched = %v, want ErrInvalidToken", err)
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := hashToken("refresh-value")
	b := hashToken("refresh-value")
	if a != b {
		t.Errorf("same input hashed to %q and %q", a, b)
	}
	if a == hashToken("different") {
		t.Error("different inputs hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
