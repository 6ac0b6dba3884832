package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type CreativeService struct {
	db *gorm.DB
}

func NewCreativeService(db *gorm.DB) *CreativeService {
	return &CreativeService{db: db}
}

func (s *CreativeService) List() ([]models.Creative, error) {
	var creatives []models.Creative
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		Preload("VoiceOver").
		Order("created_at DESC").
		Find(&creatives).Error
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	return creatives, nil
}

func (s *CreativeService) Get(id uuid.UUID) (*models.Creative, error) {
	var creative models.Creative
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		Preload("VoiceOver").
		First(&creative, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &creative, nil
}

func (s *CreativeService) Create(caller policy.Caller, req *dto.CreativeRequest) (*models.Creative, error) {
	creative := models.Creative{Status: models.WorkTodo}
	if err := s.apply(&creative, req); err != nil {
		return nil, err
	}
	buyerID := caller.UserID
	creative.MediaBuyerID = &buyerID

	if err := s.db.Create(&creative).Error; err != nil {
		return nil, fmt.Errorf("create creative: %w", err)
	}
	return s.Get(creative.ID)
}

func (s *CreativeService) Update(id uuid.UUID, req *dto.CreativeRequest) (*models.Creative, error) {
	creative, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(creative, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(creative).Error; err != nil {
		return nil, fmt.Errorf("update creative: %w", err)
	}
	return s.Get(creative.ID)
}

func (s *CreativeService) Delete(id uuid.UUID) error {
	creative, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(creative).Error; err != nil {
		return fmt.Errorf("delete creative: %w", err)
	}
	return nil
}

func (s *CreativeService) apply(creative *models.Creative, req *dto.CreativeRequest) error {
	fields := dto.FieldErrors{}

	if req.Status != nil && *req.Status != "" {
		if !validWorkStatus(*req.Status) {
			fields["status"] = "Invalid status."
		} else {
			creative.Status = *req.Status
		}
	}
	if req.Format != nil && *req.Format != "" {
		switch *req.Format {
		case models.FormatReel, models.FormatSquare, models.FormatWidescreen, models.FormatVertical:
			creative.Format = *req.Format
		default:
			fields["format"] = "Invalid format."
		}
	}
	if len(fields) > 0 {
		return fields
	}

	if req.Creator != nil {
		creative.CreatorID = userRef(s.db, req.Creator)
	}
	if req.Product != nil {
		creative.ProductID = productRef(s.db, req.Product)
	}
	if req.VoiceOver != nil {
		creative.VoiceOverID = voiceOverRef(s.db, req.VoiceOver)
	}
	if req.Language != nil {
		creative.Language = *req.Language
	}
	if req.IsVoiceOver != nil {
		creative.IsVoiceOver = req.IsVoiceOver
	}
	if req.FinalLink != nil {
		creative.FinalLink = *req.FinalLink
	}
	if req.Note != nil {
		creative.Note = *req.Note
	}
	return nil
}
