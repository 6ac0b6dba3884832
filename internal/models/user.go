package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role controls every access-policy decision. The set is fixed.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleManager     Role = "Manager"
	RoleClient      Role = "Client"
	RoleMediaBuyer  Role = "Media Buyer"
	RolePageBuilder Role = "Page Builder"
	RoleVoiceOver   Role = "Voice Over"
	RoleVideoEditor Role = "Video Editor"
)

var Roles = []Role{
	RoleAdmin,
	RoleManager,
	RoleClient,
	RoleMediaBuyer,
	RolePageBuilder,
	RoleVoiceOver,
	RoleVideoEditor,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User availability statuses shown on the team board.
const (
	StatusAvailable    = "Available"
	StatusBusy         = "Busy"
	StatusNotAvailable = "Not Available"
)

func ValidUserStatus(s string) bool {
	return s == StatusAvailable || s == StatusBusy || s == StatusNotAvailable
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Role      Role      `gorm:"size:30;not null" json:"role"`
	Status    *string   `gorm:"size:30" json:"status"`
	Profile   string    `gorm:"size:255" json:"profile"`
	CreatedAt time.Time `json:"date_joined"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultProfileImage maps a role to its bundled placeholder image,
// e.g. "Media Buyer" -> "user_profiles/media_buyer.png".
func DefaultProfileImage(role Role) string {
	return "user_profiles/" + strings.ReplaceAll(strings.ToLower(string(role)), " ", "_") + ".png"
}
