package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type VoiceOverService struct {
	db *gorm.DB
}

func NewVoiceOverService(db *gorm.DB) *VoiceOverService {
	return &VoiceOverService{db: db}
}

func (s *VoiceOverService) List() ([]models.VoiceOver, error) {
	var voiceOvers []models.VoiceOver
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		Order("created_at DESC").
		Find(&voiceOvers).Error
	if err != nil {
		return nil, fmt.Errorf("list voice-overs: %w", err)
	}
	return voiceOvers, nil
}

func (s *VoiceOverService) Get(id uuid.UUID) (*models.VoiceOver, error) {
	var voiceOver models.VoiceOver
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		First(&voiceOver, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &voiceOver, nil
}

func (s *VoiceOverService) Create(caller policy.Caller, req *dto.VoiceOverRequest) (*models.VoiceOver, error) {
	voiceOver := models.VoiceOver{Status: models.WorkTodo}
	if err := s.apply(&voiceOver, req); err != nil {
		return nil, err
	}
	buyerID := caller.UserID
	voiceOver.MediaBuyerID = &buyerID

	if err := s.db.Create(&voiceOver).Error; err != nil {
		return nil, fmt.Errorf("create voice-over: %w", err)
	}
	return s.Get(voiceOver.ID)
}

func (s *VoiceOverService) Update(id uuid.UUID, req *dto.VoiceOverRequest) (*models.VoiceOver, error) {
	voiceOver, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(voiceOver, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(voiceOver).Error; err != nil {
		return nil, fmt.Errorf("update voice-over: %w", err)
	}
	return s.Get(voiceOver.ID)
}

func (s *VoiceOverService) Delete(id uuid.UUID) error {
	voiceOver, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(voiceOver).Error; err != nil {
		return fmt.Errorf("delete voice-over: %w", err)
	}
	return nil
}

func (s *VoiceOverService) apply(voiceOver *models.VoiceOver, req *dto.VoiceOverRequest) error {
	if req.Status != nil && *req.Status != "" {
		if !validWorkStatus(*req.Status) {
			return dto.FieldErrors{"status": "Invalid status."}
		}
		voiceOver.Status = *req.Status
	}

	if req.Creator != nil {
		voiceOver.CreatorID = userRef(s.db, req.Creator)
	}
	if req.Product != nil {
		voiceOver.ProductID = productRef(s.db, req.Product)
	}
	if req.Language != nil {
		voiceOver.Language = *req.Language
	}
	if req.Script != nil {
		voiceOver.Script = *req.Script
	}
	if req.FinalLink != nil {
		voiceOver.FinalLink = *req.FinalLink
	}
	if req.Note != nil {
		voiceOver.Note = *req.Note
	}
	return nil
}
