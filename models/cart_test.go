package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemFromProduct(t *testing.T) {
	item := CartItemFromProduct(Product{ID: "p1", Name: "Lamp", Price: 12.5, Category: "home"})

	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "p1", item.ID)
	assert.Equal(t, "Lamp", item.Name)
	assert.Equal(t, 12.5, item.Price)
}
