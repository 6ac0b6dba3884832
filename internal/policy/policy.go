// Package policy decides what each role may do and which rows it may
// see. Decisions are pure functions of the caller identity that the
// middleware resolved from the bearer token; nothing here reads
// request state.
package policy

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/models"
)

type Resource string

const (
	ResourceUsers      Resource = "users"
	ResourceDirectory  Resource = "directory"
	ResourceClients    Resource = "clients"
	ResourcePayments   Resource = "payments"
	ResourceProducts   Resource = "products"
	ResourceCampaigns  Resource = "campaigns"
	ResourcePages      Resource = "pages"
	ResourceVoiceOvers Resource = "voice-overs"
	ResourceCreatives  Resource = "creatives"
)

type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Caller is the authenticated identity every policy and balance call
// receives explicitly. ClientID is set only for role Client.
type Caller struct {
	UserID   uuid.UUID
	Role     models.Role
	ClientID *uuid.UUID
}

func (c Caller) IsStaff() bool {
	return c.Role == models.RoleAdmin || c.Role == models.RoleManager
}

// rule answers a single (role, action) question for one resource.
type rule func(role models.Role, action Action) bool

func anyAuthenticated(models.Role, Action) bool { return true }

func adminOnly(role models.Role, _ Action) bool {
	return role == models.RoleAdmin
}

func staffAndClients(role models.Role, _ Action) bool {
	return role == models.RoleAdmin || role == models.RoleManager || role == models.RoleClient
}

// productsRule extends staffAndClients with the media-buyer verb
// asymmetry: buyers may read and fully update products assigned to
// them but may not create or delete.
func productsRule(role models.Role, action Action) bool {
	if staffAndClients(role, action) {
		return true
	}
	if role == models.RoleMediaBuyer {
		return action == ActionList || action == ActionView || action == ActionUpdate
	}
	return false
}

var rules = map[Resource]rule{
	ResourceUsers:      adminOnly,
	ResourceClients:    adminOnly,
	ResourceDirectory:  staffAndClients,
	ResourcePayments:   staffAndClients,
	ResourceProducts:   productsRule,
	ResourceCampaigns:  anyAuthenticated,
	ResourcePages:      anyAuthenticated,
	ResourceVoiceOvers: anyAuthenticated,
	ResourceCreatives:  anyAuthenticated,
}

// Allow reports whether the role may perform the action on the
// resource at all. Row-level narrowing is handled separately by the
// Scope functions.
func Allow(role models.Role, resource Resource, action Action) bool {
	r, ok := rules[resource]
	if !ok {
		return false
	}
	return r(role, action)
}

// denyAll matches no rows. Used when a role passes the coarse check
// but has no visible subset (e.g. a Client with no client record).
func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func all(db *gorm.DB) *gorm.DB { return db }

// PaymentScope narrows payment queries to the caller's visible subset:
// staff see everything, a client sees its own rows, everyone else none.
func PaymentScope(c Caller) func(*gorm.DB) *gorm.DB {
	switch {
	case c.IsStaff():
		return all
	case c.Role == models.RoleClient && c.ClientID != nil:
		clientID := *c.ClientID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("payments.client_id = ?", clientID)
		}
	default:
		return denyAll
	}
}

// ProductScope narrows product queries: staff see everything, a client
// sees products linked to it, a media buyer sees products assigned to
// them.
func ProductScope(c Caller) func(*gorm.DB) *gorm.DB {
	switch {
	case c.IsStaff():
		return all
	case c.Role == models.RoleClient && c.ClientID != nil:
		clientID := *c.ClientID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("products.client_id = ?", clientID)
		}
	case c.Role == models.RoleMediaBuyer:
		userID := c.UserID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("products.media_buyer_id = ?", userID)
		}
	default:
		return denyAll
	}
}
