package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign records ad spend and lead counts per client. All foreign
// links survive deletion of the referenced row (SET NULL).
type Campaign struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client       *Client    `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"client,omitempty"`
	MediaBuyerID *uuid.UUID `gorm:"type:uuid;index" json:"media_buyer_id"`
	MediaBuyer   *User      `gorm:"foreignKey:MediaBuyerID;constraint:OnDelete:SET NULL" json:"media_buyer,omitempty"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product      *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Name         string     `gorm:"size:100" json:"name"`
	StartedDate  *time.Time `gorm:"type:date" json:"started_date"`
	EndedDate    *time.Time `gorm:"type:date" json:"ended_date"`
	Status       string     `gorm:"size:20" json:"status"`
	Platform     string     `gorm:"size:20" json:"platform"`
	Budget       float64    `gorm:"type:decimal(10,2);default:0" json:"budget"`
	Leads        int        `gorm:"default:0" json:"leads"`
	AmountSpent  float64    `gorm:"type:decimal(10,2);default:0" json:"amount_spent"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}
