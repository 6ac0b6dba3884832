package dto

// PaymentRequest references the client by raw id; the API layer
// resolves it (or forces the caller's own client) before the store is
// touched.
type PaymentRequest struct {
	Client *string  `json:"client"`
	Amount *float64 `json:"amount"`
	Proof  *string  `json:"proof"`
	Type   *string  `json:"type"`
	Status *string  `json:"status"`
}
