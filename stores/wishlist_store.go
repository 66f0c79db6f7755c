package stores

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"storefront-client/models"
	"storefront-client/storage"
)

const wishlistKey = "wishlist"

// WishlistStore is a saved-products set keyed by product ID. Same persistence
// discipline as the cart, different storage key, no quantities.
type WishlistStore struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  *zap.Logger
	items   []models.Product
}

func NewWishlistStore(st storage.Storage, logger *zap.Logger) *WishlistStore {
	s := &WishlistStore{storage: st, logger: logger}

	data, ok := st.Get(wishlistKey)
	if ok {
		if err := json.Unmarshal(data, &s.items); err != nil {
			logger.Warn("Discarding malformed wishlist state", zap.Error(err))
			s.items = nil
		}
	}
	return s
}

// AddItem saves the product. Adding a product that is already saved is a
// no-op; membership is a set.
func (s *WishlistStore) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			return
		}
	}
	s.items = append(s.items, p)
	s.persist()
}

func (s *WishlistStore) RemoveItem(id string) {
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

func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Contains reports membership by product ID.
func (s *WishlistStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Items() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *WishlistStore) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("Failed to encode wishlist state", zap.Error(err))
		return
	}
	if err := s.storage.Set(wishlistKey, data); err != nil {
		s.logger.Error("Failed to persist wishlist state", zap.Error(err))
	}
}
