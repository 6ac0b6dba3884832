package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type PageService struct {
	db *gorm.DB
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

func (s *PageService) List() ([]models.Page, error) {
	var pages []models.Page
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		Order("created_at DESC").
		Find(&pages).Error
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

func (s *PageService) Get(id uuid.UUID) (*models.Page, error) {
	var page models.Page
	err := s.db.
		Preload("MediaBuyer").
		Preload("Creator").
		Preload("Product").
		First(&page, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &page, nil
}

// Create assigns the page to the caller as media buyer.
func (s *PageService) Create(caller policy.Caller, req *dto.PageRequest) (*models.Page, error) {
	page := models.Page{Status: models.WorkTodo}
	if err := s.apply(&page, req); err != nil {
		return nil, err
	}
	buyerID := caller.UserID
	page.MediaBuyerID = &buyerID

	if err := s.db.Create(&page).Error; err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return s.Get(page.ID)
}

func (s *PageService) Update(id uuid.UUID, req *dto.PageRequest) (*models.Page, error) {
	page, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(page, req); err != nil {
		return nil, err
	}
	if err := s.db.Save(page).Error; err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	return s.Get(page.ID)
}

func (s *PageService) Delete(id uuid.UUID) error {
	page, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(page).Error; err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

func (s *PageService) apply(page *models.Page, req *dto.PageRequest) error {
	if req.Status != nil && *req.Status != "" {
		if !validWorkStatus(*req.Status) {
			return dto.FieldErrors{"status": "Invalid status."}
		}
		page.Status = *req.Status
	}

	if req.Creator != nil {
		page.CreatorID = userRef(s.db, req.Creator)
	}
	if req.Product != nil {
		page.ProductID = productRef(s.db, req.Product)
	}
	if req.Type != nil {
		page.Type = *req.Type
	}
	if req.Store != nil {
		page.Store = *req.Store
	}
	if req.Language != nil {
		page.Language = *req.Language
	}
	if req.FinalLink != nil {
		page.FinalLink = *req.FinalLink
	}
	if req.Note != nil {
		page.Note = *req.Note
	}
	return nil
}

func validWorkStatus(s string) bool {
	return s == models.WorkTodo || s == models.WorkInProgress || s == models.WorkDone
}
