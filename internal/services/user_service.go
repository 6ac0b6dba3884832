package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
)

const emailTakenMsg = "User with this email already exists for another user."

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns staff users: the caller themselves and all Clients are
// excluded (clients are managed through the client resource).
func (s *UserService) List(callerID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Where("id <> ? AND role <> ?", callerID, models.RoleClient).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListByRole backs the assignment-picker directories.
func (s *UserService) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ?", role).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list %s users: %w", role, err)
	}
	return users, nil
}

func (s *UserService) Get(callerID, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND id <> ?", id, callerID).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.UserRequest) (*models.User, error) {
	user, err := prepareNewUser(s.db, req, "")
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(user).Error; err != nil {
		if emailConflict(err) {
			return nil, dto.FieldErrors{"email": emailTakenMsg}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Update(callerID, id uuid.UUID, req *dto.UserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND id <> ?", id, callerID).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := applyUserUpdate(s.db, &user, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(&user).Error; err != nil {
		if emailConflict(err) {
			return nil, dto.FieldErrors{"email": emailTakenMsg}
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// Delete removes the user and everything hanging off it. A Client-role
// user drags its client record and that client's payments along, the
// same cascade the client resource performs.
func (s *UserService) Delete(callerID, id uuid.UUID) error {
	var user models.User
	if err := s.db.Where("id = ? AND id <> ?", id, callerID).First(&user).Error; err != nil {
		return ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, "user_id = ?", user.ID).Error; err == nil {
			if err := tx.Where("client_id = ?", client.ID).Delete(&models.Payment{}).Error; err != nil {
				return fmt.Errorf("delete user payments: %w", err)
			}
			if err := tx.Delete(&client).Error; err != nil {
				return fmt.Errorf("delete user client: %w", err)
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("delete user tokens: %w", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailConflict reports whether a write failed on the email unique
// index. The pre-check in emailTaken races with concurrent writers, so
// the violation has to be recognized after the fact as well.
func emailConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		(errors.As(err, &pgErr) && pgErr.Code == "23505")
}

// emailTaken reports whether another user already owns the email.
func emailTaken(db *gorm.DB, email string, exclude uuid.UUID) bool {
	var count int64
	db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exclude).
		Count(&count)
	return count > 0
}

// prepareNewUser validates a create payload and returns an unsaved
// user. forceRole pins the role (composite client creation); when
// empty the payload role is used.
func prepareNewUser(db *gorm.DB, req *dto.UserRequest, forceRole models.Role) (*models.User, error) {
	fields := dto.FieldErrors{}

	email := ""
	if req.Email != nil {
		email = normalizeEmail(*req.Email)
	}
	switch {
	case email == "":
		fields["email"] = "This field may not be blank."
	case !strings.Contains(email, "@"):
		fields["email"] = "Enter a valid email address."
	case emailTaken(db, email, uuid.Nil):
		fields["email"] = emailTakenMsg
	}

	if req.Password == nil || *req.Password == "" {
		fields["password"] = "This field may not be blank."
	}

	role := forceRole
	if role == "" {
		if req.Role == nil || *req.Role == "" {
			fields["role"] = "This field may not be blank."
		} else if role = models.Role(*req.Role); !role.Valid() {
			fields["role"] = "Invalid role."
		}
	}

	if req.Status != nil && *req.Status != "" && !models.ValidUserStatus(*req.Status) {
		fields["status"] = "Invalid status."
	}

	if len(fields) > 0 {
		return nil, fields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
		Profile:  models.DefaultProfileImage(role),
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Status != nil && *req.Status != "" {
		user.Status = req.Status
	}
	if req.Profile != nil && *req.Profile != "" {
		user.Profile = *req.Profile
	}
	return user, nil
}

// applyUserUpdate applies a partial payload in place. An omitted or
// blank password keeps the stored hash; a role change without an
// explicit image regenerates the role placeholder.
func applyUserUpdate(db *gorm.DB, user *models.User, req *dto.UserRequest) error {
	fields := dto.FieldErrors{}

	if req.Email != nil && *req.Email != "" {
		email := normalizeEmail(*req.Email)
		if !strings.Contains(email, "@") {
			fields["email"] = "Enter a valid email address."
		} else if emailTaken(db, email, user.ID) {
			fields["email"] = emailTakenMsg
		} else {
			user.Email = email
		}
	}

	if req.Role != nil && *req.Role != "" {
		role := models.Role(*req.Role)
		if !role.Valid() {
			fields["role"] = "Invalid role."
		} else if role != user.Role {
			user.Role = role
			if req.Profile == nil || *req.Profile == "" {
				user.Profile = models.DefaultProfileImage(role)
			}
		}
	}

	if req.Status != nil && *req.Status != "" {
		if !models.ValidUserStatus(*req.Status) {
			fields["status"] = "Invalid status."
		} else {
			user.Status = req.Status
		}
	}

	if len(fields) > 0 {
		return fields
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Profile != nil && *req.Profile != "" {
		user.Profile = *req.Profile
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
	}
	return nil
}
