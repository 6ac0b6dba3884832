package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/balance"
	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
)

// ClientService manages the composite User+Client pair and decorates
// reads with the derived balances.
type ClientService struct {
	db     *gorm.DB
	engine *balance.Engine
}

func NewClientService(db *gorm.DB, engine *balance.Engine) *ClientService {
	return &ClientService{db: db, engine: engine}
}

func (s *ClientService) List() ([]dto.ClientResponse, error) {
	var clients []models.Client
	if err := s.db.Preload("User").Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	now := time.Now().UTC()
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		snap, err := s.engine.ForClient(client.ID, client.Commission, now)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ClientResponse{Client: client, Snapshot: snap})
	}
	return out, nil
}

func (s *ClientService) Get(id uuid.UUID) (*dto.ClientResponse, error) {
	var client models.Client
	if err := s.db.Preload("User").First(&client, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	snap, err := s.engine.ForClient(client.ID, client.Commission, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: client, Snapshot: snap}, nil
}

// Create builds the linked user (role pinned to Client) and the client
// row in one transaction.
func (s *ClientService) Create(req *dto.ClientRequest) (*dto.ClientResponse, error) {
	user, err := prepareNewUser(s.db, &req.User, models.RoleClient)
	if err != nil {
		return nil, err
	}

	client := models.Client{}
	if req.Commission != nil {
		client.Commission = *req.Commission
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if emailConflict(err) {
				return dto.FieldErrors{"email": emailTakenMsg}
			}
			return fmt.Errorf("create client user: %w", err)
		}
		client.UserID = user.ID
		if err := tx.Create(&client).Error; err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(client.ID)
}

func (s *ClientService) Update(id uuid.UUID, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	var client models.Client
	if err := s.db.Preload("User").First(&client, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	userReq := pinClientRole(req.User)
	if err := applyUserUpdate(s.db, &client.User, &userReq); err != nil {
		return nil, err
	}

	if req.Commission != nil {
		client.Commission = *req.Commission
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&client.User).Error; err != nil {
			if emailConflict(err) {
				return dto.FieldErrors{"email": emailTakenMsg}
			}
			return fmt.Errorf("update client user: %w", err)
		}
		if err := tx.Save(&client).Error; err != nil {
			return fmt.Errorf("update client: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(client.ID)
}

// pinClientRole returns a copy of the payload with the role pinned to
// Client. The linked account can never change role through the client
// resource, whatever the payload carries.
func pinClientRole(req dto.UserRequest) dto.UserRequest {
	role := string(models.RoleClient)
	req.Role = &role
	return req
}

// Delete removes the client together with its payments and its user
// account.
func (s *ClientService) Delete(id uuid.UUID) error {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		return ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("delete client payments: %w", err)
		}
		if err := tx.Delete(&client).Error; err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		if err := tx.Where("user_id = ?", client.UserID).Delete(&models.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("delete client tokens: %w", err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", client.UserID).Error; err != nil {
			return fmt.Errorf("delete client user: %w", err)
		}
		return nil
	})
}
