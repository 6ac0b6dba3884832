package dto

type ProductRequest struct {
	Client          *string  `json:"client"`
	MediaBuyer      *string  `json:"media_buyer"`
	Name            *string  `json:"name"`
	Image           *string  `json:"image"`
	Link            *string  `json:"link"`
	Type            *string  `json:"type"`
	SourcingPrice   *float64 `json:"sourcing_price"`
	ServiceProvider *string  `json:"service_provider"`
	Country         *string  `json:"country"`
	SellingPrice    *float64 `json:"selling_price"`
	Quantity        *int     `json:"quantity"`
	UpsellStatus    *string  `json:"upsell_status"`
	UpsellOffers    *string  `json:"upsell_offers"`
	AOV             *float64 `json:"aov"`
	TestCPP         *float64 `json:"test_cpp"`
	Decision        *string  `json:"decision"`
	Status          *string  `json:"status"`
}
