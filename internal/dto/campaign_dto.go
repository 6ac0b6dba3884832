package dto

type CampaignRequest struct {
	Client      *string  `json:"client"`
	MediaBuyer  *string  `json:"media_buyer"`
	Product     *string  `json:"product"`
	Name        *string  `json:"name"`
	StartedDate *string  `json:"started_date"`
	EndedDate   *string  `json:"ended_date"`
	Status      *string  `json:"status"`
	Platform    *string  `json:"platform"`
	Budget      *float64 `json:"budget"`
	Leads       *int     `json:"leads"`
	AmountSpent *float64 `json:"amount_spent"`
}
