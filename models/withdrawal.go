package models

import "time"

const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// Withdrawal is a vendor payout request. Approval and rejection are
// admin/ops operations; the balance itself is managed server-side.
type Withdrawal struct {
	ID        string    `json:"id" validate:"required"`
	VendorID  string    `json:"vendor_id"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	Status    string    `json:"status" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
