package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentTypeMembership   = "Membership"
	PaymentTypeAdsBalance   = "Ads Balance"
	PaymentTypeLeadsBalance = "Leads Balance"
	PaymentTypeWrongOrders  = "Wrong Orders"
)

const (
	PaymentApproved        = "Approved"
	PaymentWaitingApproval = "Waiting Approval"
	PaymentNotApproved     = "Not Approved"
)

func ValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeMembership, PaymentTypeAdsBalance, PaymentTypeLeadsBalance, PaymentTypeWrongOrders:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentApproved, PaymentWaitingApproval, PaymentNotApproved:
		return true
	}
	return false
}

// Payment is a money movement claimed by or for a client. Only rows
// with status Approved count toward balances. Payments are deleted
// together with their client.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client    Client    `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client"`
	Amount    float64   `gorm:"type:decimal(10,2);default:0" json:"amount"`
	Proof     string    `gorm:"size:255" json:"proof"`
	Type      string    `gorm:"size:20" json:"type"`
	Status    string    `gorm:"size:20;default:'Waiting Approval'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
