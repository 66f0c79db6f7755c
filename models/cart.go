package models

// CartItem is a product selected for checkout. Items are unique by product ID
// within a cart and Quantity is always >= 1; a quantity update below 1 removes
// the item instead.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// CartItemFromProduct builds a cart entry with an initial quantity of 1.
func CartItemFromProduct(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Quantity: 1,
	}
}
