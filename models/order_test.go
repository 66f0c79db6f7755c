package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderStatus(t *testing.T) {
	tests := []struct {
		current string
		next    string
		ok      bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
		{OrderStatusCancelled, "", false},
		{"bogus", "", false},
	}

	for _, tt := range tests {
		next, ok := NextOrderStatus(tt.current)
		assert.Equal(t, tt.ok, ok, tt.current)
		assert.Equal(t, tt.next, next, tt.current)
	}
}
