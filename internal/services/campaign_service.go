package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
)

// CampaignService is deliberately unscoped: any authenticated user may
// read and write campaigns.
type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

func (s *CampaignService) List() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.db.
		Preload("Client.User").
		Preload("MediaBuyer").
		Preload("Product").
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *CampaignService) Get(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.db.
		Preload("Client.User").
		Preload("MediaBuyer").
		Preload("Product").
		First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &campaign, nil
}

func (s *CampaignService) Create(req *dto.CampaignRequest) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.apply(&campaign, req); err != nil {
		return nil, err
	}
	if err := s.db.Create(&campaign).Error; err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return s.Get(campaign.ID)
}

func (s *CampaignService) Update(id uuid.UUID, req *dto.CampaignRequest) (*models.Campaign, error) {
	campaign, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(campaign, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(campaign).Error; err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return s.Get(campaign.ID)
}

func (s *CampaignService) Delete(id uuid.UUID) error {
	campaign, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(campaign).Error; err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}

func (s *CampaignService) apply(campaign *models.Campaign, req *dto.CampaignRequest) error {
	fields := dto.FieldErrors{}

	started, err := parseDate(req.StartedDate)
	if err != nil {
		fields["started_date"] = "Date has wrong format. Use YYYY-MM-DD."
	}
	ended, err := parseDate(req.EndedDate)
	if err != nil {
		fields["ended_date"] = "Date has wrong format. Use YYYY-MM-DD."
	}
	if len(fields) > 0 {
		return fields
	}

	if started != nil {
		campaign.StartedDate = started
	}
	if ended != nil {
		campaign.EndedDate = ended
	}
	if req.Client != nil {
		campaign.ClientID = clientRef(s.db, req.Client)
	}
	if req.MediaBuyer != nil {
		campaign.MediaBuyerID = userRef(s.db, req.MediaBuyer)
	}
	if req.Product != nil {
		campaign.ProductID = productRef(s.db, req.Product)
	}
	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}
	if req.Platform != nil {
		campaign.Platform = *req.Platform
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.Leads != nil {
		campaign.Leads = *req.Leads
	}
	if req.AmountSpent != nil {
		campaign.AmountSpent = *req.AmountSpent
	}
	return nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
