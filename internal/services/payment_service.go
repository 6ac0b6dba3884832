package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/dto"
	"github.com/agencyops/backoffice-api/internal/models"
	"github.com/agencyops/backoffice-api/internal/policy"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) List(caller policy.Caller) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.
		Scopes(policy.PaymentScope(caller)).
		Preload("Client.User").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) Get(caller policy.Caller, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.
		Scopes(policy.PaymentScope(caller)).
		Preload("Client.User").
		First(&payment, "payments.id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &payment, nil
}

// Create attaches the client per role: staff resolve it from the
// payload, a client is pinned to its own record with the status forced
// back to Waiting Approval whatever was submitted.
func (s *PaymentService) Create(caller policy.Caller, req *dto.PaymentRequest) (*models.Payment, error) {
	payment := models.Payment{Status: models.PaymentWaitingApproval}
	if err := applyPayment(&payment, req); err != nil {
		return nil, err
	}

	switch {
	case caller.IsStaff():
		ref := clientRef(s.db, req.Client)
		if ref == nil {
			return nil, dto.FieldErrors{"client": "Client not found."}
		}
		payment.ClientID = *ref
	case caller.Role == models.RoleClient && caller.ClientID != nil:
		payment.ClientID = *caller.ClientID
	default:
		return nil, ErrNotFound
	}
	forceClientReview(caller, &payment)

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return s.Get(caller, payment.ID)
}

func (s *PaymentService) Update(caller policy.Caller, id uuid.UUID, req *dto.PaymentRequest) (*models.Payment, error) {
	payment, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if err := applyPayment(payment, req); err != nil {
		return nil, err
	}

	if caller.IsStaff() && req.Client != nil {
		ref := clientRef(s.db, req.Client)
		if ref == nil {
			return nil, dto.FieldErrors{"client": "Client not found."}
		}
		payment.ClientID = *ref
	}
	forceClientReview(caller, payment)

	if err := s.db.Save(payment).Error; err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return s.Get(caller, payment.ID)
}

func (s *PaymentService) Delete(caller policy.Caller, id uuid.UUID) error {
	payment, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(payment).Error; err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// forceClientReview puts a client-written row back in review whatever
// status the payload claimed. Staff writes pass through untouched.
func forceClientReview(caller policy.Caller, payment *models.Payment) {
	if caller.Role == models.RoleClient {
		payment.Status = models.PaymentWaitingApproval
	}
}

func applyPayment(payment *models.Payment, req *dto.PaymentRequest) error {
	fields := dto.FieldErrors{}

	if req.Type != nil && *req.Type != "" {
		if !models.ValidPaymentType(*req.Type) {
			fields["type"] = "Invalid payment type."
		} else {
			payment.Type = *req.Type
		}
	}
	if req.Status != nil && *req.Status != "" {
		if !models.ValidPaymentStatus(*req.Status) {
			fields["status"] = "Invalid payment status."
		} else {
			payment.Status = *req.Status
		}
	}

	if len(fields) > 0 {
		return fields
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Proof != nil {
		payment.Proof = *req.Proof
	}
	return nil
}
