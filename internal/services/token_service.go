package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/config"
	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
)

// TokenService issues and rotates the access/refresh pair. Access
// tokens are signed HS256 claims; refresh tokens are opaque random
// values stored hashed, revoked on every rotation.
type TokenService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewTokenService(db *gorm.DB, cfg *config.Config) *TokenService {
	return &TokenService{db: db, cfg: cfg}
}

func (s *TokenService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(&user)
}

func (s *TokenService) Refresh(req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	tokenHash := hashToken(req.Refresh)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		// Expiry alone invalidates it; the flag is bookkeeping.
		_ = s.revoke(&stored)
		return nil, ErrInvalidToken
	}

	// The old token must be burned before a new pair exists. A failed
	// or raced revocation aborts the rotation.
	if err := s.revoke(&stored); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return s.issuePair(&user)
}

func (s *TokenService) issuePair(user *models.User) (*dto.TokenResponse, error) {
	access, err := s.AccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := s.refreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Access:  access,
		Refresh: refresh,
		Role:    user.Role,
		UserID:  user.ID,
	}, nil
}

// AccessToken signs the short-lived bearer token. The role claim is
// informational only; authorization always reloads the user row.
func (s *TokenService) AccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// revoke marks a stored refresh token as used. Zero rows touched means
// a concurrent refresh already consumed it.
func (s *TokenService) revoke(stored *models.RefreshToken) error {
	res := s.db.Model(stored).Where("revoked = false").Update("revoked", true)
	if res.Error != nil {
		return fmt.Errorf("revoke refresh token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidToken
	}
	return nil
}

func (s *TokenService) refreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
