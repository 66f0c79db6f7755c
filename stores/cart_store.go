package stores

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"storefront-client/models"
	"storefront-client/storage"
)

const cartKey = "cart"

// CartStore holds the current session's cart. Every mutation is synchronously
// written back to storage; construction hydrates from storage, treating
// malformed data as an empty cart.
//
// Stores are plain injected objects, never package singletons, so tests can
// build isolated instances.
type CartStore struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  *zap.Logger
	items   []models.CartItem
}

func NewCartStore(st storage.Storage, logger *zap.Logger) *CartStore {
	s := &CartStore{storage: st, logger: logger}

	data, ok := st.Get(cartKey)
	if ok {
		if err := json.Unmarshal(data, &s.items); err != nil {
			logger.Warn("Discarding malformed cart state", zap.Error(err))
			s.items = nil
		}
	}
	return s
}

// AddItem inserts the product with quantity 1, or bumps the quantity when the
// product is already in the cart.
func (s *CartStore) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, models.CartItemFromProduct(p))
	s.persist()
}

// UpdateQuantity sets the quantity exactly. Anything below 1 removes the item;
// a negative-quantity entry can never exist.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem deletes by product ID; removing an absent item is a no-op.
func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart, called after a successful checkout.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the cart contents.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is recomputed on every read: sum of price times quantity.
func (s *CartStore) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct products.
func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persist is called with the lock held. Write failures are logged and
// swallowed: the in-memory cart stays usable either way.
func (s *CartStore) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("Failed to encode cart state", zap.Error(err))
		return
	}
	if err := s.storage.Set(cartKey, data); err != nil {
		s.logger.Error("Failed to persist cart state", zap.Error(err))
	}
}
