package models

import "time"

// Order statuses. Ops advance orders along the pipeline; cancelled is a
// terminal branch off pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var orderPipeline = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// NextOrderStatus returns the status following s in the fulfilment pipeline.
// It returns false for delivered, cancelled and unknown statuses.
func NextOrderStatus(s string) (string, bool) {
	for i, status := range orderPipeline {
		if status == s && i+1 < len(orderPipeline) {
			return orderPipeline[i+1], true
		}
	}
	return "", false
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID         string      `json:"id" validate:"required"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Status     string      `json:"status" validate:"required"`
	CreatedAt  time.Time   `json:"created_at"`
}

// CreateOrderRequest is posted at checkout. Stock and pricing are validated
// server-side at order creation, never on the client.
type CreateOrderRequest struct {
	Items []OrderItem `json:"items"`
}
