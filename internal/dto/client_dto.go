package dto

import (
	"github.com/agencyops/backoffice-api/internal/balance"
	"github.com/agencyops/backoffice-api/internal/models"
)

// ClientRequest is the composite create/update payload: the linked
// user account plus the commission rate.
type ClientRequest struct {
	User       UserRequest `json:"user"`
	Commission *float64    `json:"commission"`
}

// ClientResponse embeds the derived balances next to the stored row.
type ClientResponse struct {
	models.Client
	balance.Snapshot
}
