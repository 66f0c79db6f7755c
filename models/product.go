package models

// Product is read-only on the client. Vendor and admin flows send full
// replacement payloads back to the API; nothing mutates a Product in place.
type Product struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	InStock     bool     `json:"in_stock"`
	Photos      []string `json:"photos"`
}

// ProductPayload is the full replacement body for create/update.
type ProductPayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	InStock     bool    `json:"in_stock"`
}
