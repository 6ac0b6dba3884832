package models

import (
	"time"

	"github.com/google/uuid"
)

// Workflow statuses shared by pages, voice-overs and creatives.
const (
	WorkTodo       = "To Do"
	WorkInProgress = "In Progress"
	WorkDone       = "Done"
)

const (
	LanguageArabic  = "Arabic"
	LanguageFrench  = "French"
	LanguageEnglish = "English"
)

const (
	PageTypeProduct = "Product Page"
	PageTypeLanding = "Landing Page"
)

// Creative video formats as delivered to the ad platforms.
const (
	FormatReel       = "Reel (9:16)"
	FormatSquare     = "Square (1:1)"
	FormatWidescreen = "widescreen (16:19)"
	FormatVertical   = "Vertical (4:5)"
)

// Page is a landing/product page task assigned by a media buyer to a
// page builder.
type Page struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MediaBuyerID *uuid.UUID `gorm:"type:uuid;index" json:"media_buyer_id"`
	MediaBuyer   *User      `gorm:"foreignKey:MediaBuyerID;constraint:OnDelete:SET NULL" json:"media_buyer,omitempty"`
	CreatorID    *uuid.UUID `gorm:"type:uuid;index" json:"creator_id"`
	Creator      *User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product      *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Type         string     `gorm:"size:30" json:"type"`
	Store        string     `gorm:"size:55" json:"store"`
	Language     string     `gorm:"size:20" json:"language"`
	Status       string     `gorm:"size:20;default:'To Do'" json:"status"`
	FinalLink    string     `gorm:"size:255" json:"final_link"`
	Note         string     `gorm:"size:255" json:"note"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}

// VoiceOver is a narration task assigned to a voice-over artist.
type VoiceOver struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MediaBuyerID *uuid.UUID `gorm:"type:uuid;index" json:"media_buyer_id"`
	MediaBuyer   *User      `gorm:"foreignKey:MediaBuyerID;constraint:OnDelete:SET NULL" json:"media_buyer,omitempty"`
	CreatorID    *uuid.UUID `gorm:"type:uuid;index" json:"creator_id"`
	Creator      *User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product      *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Language     string     `gorm:"size:20" json:"language"`
	Script       string     `gorm:"size:255" json:"script"`
	Status       string     `gorm:"size:20;default:'To Do'" json:"status"`
	FinalLink    string     `gorm:"size:255" json:"final_link"`
	Note         string     `gorm:"size:255" json:"note"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}

// Creative is a video-editing task, optionally built on top of a
// voice-over recording.
type Creative struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MediaBuyerID *uuid.UUID `gorm:"type:uuid;index" json:"media_buyer_id"`
	MediaBuyer   *User      `gorm:"foreignKey:MediaBuyerID;constraint:OnDelete:SET NULL" json:"media_buyer,omitempty"`
	CreatorID    *uuid.UUID `gorm:"type:uuid;index" json:"creator_id"`
	Creator      *User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product      *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	VoiceOverID  *uuid.UUID `gorm:"type:uuid;index" json:"voice_over_id"`
	VoiceOver    *VoiceOver `gorm:"foreignKey:VoiceOverID;constraint:OnDelete:SET NULL" json:"voice_over,omitempty"`
	Format       string     `gorm:"size:30" json:"format"`
	Language     string     `gorm:"size:20" json:"language"`
	IsVoiceOver  *bool      `json:"is_voice_over"`
	Status       string     `gorm:"size:20;default:'To Do'" json:"status"`
	FinalLink    string     `gorm:"size:255" json:"final_link"`
	Note         string     `gorm:"size:255" json:"note"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}
