package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProductTypeTesting   = "Testing"
	ProductTypeScaling   = "Scaling"
	ProductTypeAffiliate = "Affiliate"
)

// Product lifecycle statuses, in rough pipeline order.
const (
	ProductStatusNew             = "New"
	ProductStatusNotApproved     = "Not Approved"
	ProductStatusApproved        = "Approved"
	ProductStatusAwaitingLanding = "Awaiting Landing Page"
	ProductStatusAwaitingCreatives = "Awaiting Creatives"
	ProductStatusPublished       = "Published"
)

type Product struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client          *Client    `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"client,omitempty"`
	MediaBuyerID    *uuid.UUID `gorm:"type:uuid;index" json:"media_buyer_id"`
	MediaBuyer      *User      `gorm:"foreignKey:MediaBuyerID;constraint:OnDelete:SET NULL" json:"media_buyer,omitempty"`
	Name            string     `gorm:"size:100" json:"name"`
	Image           string     `gorm:"size:255;default:'products/product_default.png'" json:"image"`
	Link            string     `gorm:"size:255" json:"link"`
	Type            string     `gorm:"size:20" json:"type"`
	SourcingPrice   float64    `gorm:"type:decimal(10,2);default:0" json:"sourcing_price"`
	ServiceProvider string     `gorm:"size:30" json:"service_provider"`
	Country         string     `gorm:"size:30" json:"country"`
	SellingPrice    float64    `gorm:"type:decimal(10,2);default:0" json:"selling_price"`
	Quantity        int        `gorm:"default:0" json:"quantity"`
	UpsellStatus    string     `gorm:"size:20" json:"upsell_status"`
	UpsellOffers    string     `gorm:"size:55" json:"upsell_offers"`
	AOV             float64    `gorm:"column:aov;type:decimal(10,2);default:0" json:"aov"`
	TestCPP         float64    `gorm:"column:test_cpp;type:decimal(10,2);default:0" json:"test_cpp"`
	Decision        string     `gorm:"size:30" json:"decision"`
	Status          string     `gorm:"size:30;default:'New'" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"-"`
}
