package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is the billing counterpart of a User with role Client. The two
// records live and die together: deleting the Client removes the User
// and every Payment it ever made.
type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	Commission float64   `gorm:"type:decimal(10,2);default:0" json:"commission"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}
