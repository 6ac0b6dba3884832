package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List(caller policy.Caller) ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Scopes(policy.ProductScope(caller)).
		Preload("Client.User").
		Preload("MediaBuyer").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(caller policy.Caller, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Scopes(policy.ProductScope(caller)).
		Preload("Client.User").
		Preload("MediaBuyer").
		First(&product, "products.id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create attaches ownership per role: a client caller always gets its
// own client record, staff may pass one; the media buyer reference is
// resolved from the payload or cleared.
func (s *ProductService) Create(caller policy.Caller, req *dto.ProductRequest) (*models.Product, error) {
	product := models.Product{Status: models.ProductStatusNew}
	if err := applyProduct(&product, req); err != nil {
		return nil, err
	}

	if caller.Role == models.RoleClient {
		product.ClientID = caller.ClientID
	} else {
		product.ClientID = clientRef(s.db, req.Client)
	}
	product.MediaBuyerID = userRef(s.db, req.MediaBuyer)

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.Get(caller, product.ID)
}

func (s *ProductService) Update(caller policy.Caller, id uuid.UUID, req *dto.ProductRequest) (*models.Product, error) {
	product, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if err := applyProduct(product, req); err != nil {
		return nil, err
	}

	if caller.IsStaff() || caller.Role == models.RoleClient {
		if caller.Role == models.RoleClient {
			product.ClientID = caller.ClientID
		} else if req.Client != nil {
			product.ClientID = clientRef(s.db, req.Client)
		}
		product.MediaBuyerID = userRef(s.db, req.MediaBuyer)
	}
	// Other roles (media buyer PUT) keep the existing ownership links.

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.Get(caller, product.ID)
}

func (s *ProductService) Delete(caller policy.Caller, id uuid.UUID) error {
	product, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func applyProduct(product *models.Product, req *dto.ProductRequest) error {
	if req.Status != nil && *req.Status != "" {
		switch *req.Status {
		case models.ProductStatusNew, models.ProductStatusNotApproved, models.ProductStatusApproved,
			models.ProductStatusAwaitingLanding, models.ProductStatusAwaitingCreatives, models.ProductStatusPublished:
			product.Status = *req.Status
		default:
			return dto.FieldErrors{"status": "Invalid product status."}
		}
	}
	if req.Type != nil && *req.Type != "" {
		switch *req.Type {
		case models.ProductTypeTesting, models.ProductTypeScaling, models.ProductTypeAffiliate:
			product.Type = *req.Type
		default:
			return dto.FieldErrors{"type": "Invalid product type."}
		}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Image != nil && *req.Image != "" {
		product.Image = *req.Image
	}
	if req.Link != nil {
		product.Link = *req.Link
	}
	if req.SourcingPrice != nil {
		product.SourcingPrice = *req.SourcingPrice
	}
	if req.ServiceProvider != nil {
		product.ServiceProvider = *req.ServiceProvider
	}
	if req.Country != nil {
		product.Country = *req.Country
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.UpsellStatus != nil {
		product.UpsellStatus = *req.UpsellStatus
	}
	if req.UpsellOffers != nil {
		product.UpsellOffers = *req.UpsellOffers
	}
	if req.AOV != nil {
		product.AOV = *req.AOV
	}
	if req.TestCPP != nil {
		product.TestCPP = *req.TestCPP
	}
	if req.Decision != nil {
		product.Decision = *req.Decision
	}
	return nil
}
