package models

import "time"

// ReferralLink is issued per product. Clicks, conversions and commission are
// tracked server-side; the client only renders the numbers.
type ReferralLink struct {
	ID          string `json:"id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	ProductID   string `json:"product_id"`
	URL         string `json:"url"`
	Active      bool   `json:"active"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

type ReferralStats struct {
	TotalClicks      int     `json:"total_clicks"`
	TotalConversions int     `json:"total_conversions"`
	TotalCommission  float64 `json:"total_commission"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// ReferralDay is one bucket of the analytics series.
type ReferralDay struct {
	Date        string  `json:"date"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Commission  float64 `json:"commission"`
}

type ReferralBalance struct {
	Available float64 `json:"available"`
	Locked    float64 `json:"locked"`
}

type ReferralPayout struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
