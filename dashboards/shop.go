// Package dashboards mirrors the per-role screens: each view independently
// fetches its resource list, filters client-side over the full fetched list,
// and re-fetches after any mutating action. Failures are terminal and shallow:
// log, return the error, keep the previous list in place.
package dashboards

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
	"storefront-client/stores"
)

// ErrNotInCatalog is returned when an action references a product that is not
// in the last fetched catalog.
var ErrNotInCatalog = errors.New("product not in catalog")

// Shop is the customer storefront: browse, cart, wishlist, checkout.
type Shop struct {
	mu       sync.Mutex
	products clients.ProductAPI
	orders   clients.OrderAPI
	session  *session.Session
	cart     *stores.CartStore
	wishlist *stores.WishlistStore
	logger   *zap.Logger

	catalog []models.Product
}

func NewShop(products clients.ProductAPI, orders clients.OrderAPI, sess *session.Session, cart *stores.CartStore, wishlist *stores.WishlistStore, logger *zap.Logger) *Shop {
	return &Shop{
		products: products,
		orders:   orders,
		session:  sess,
		cart:     cart,
		wishlist: wishlist,
		logger:   logger,
	}
}

// Refresh fetches the full catalog. On failure the previous catalog stays
// displayed.
func (s *Shop) Refresh(ctx context.Context) error {
	list, err := s.products.List(ctx, s.session.Token(), clients.ListOptions{})
	if err != nil {
		s.logger.Warn("Failed to load catalog", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.catalog = list
	s.mu.Unlock()
	return nil
}

func (s *Shop) Catalog() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Search filters the fetched catalog client-side, case-insensitive over name
// and description.
func (s *Shop) Search(query string) []models.Product {
	query = strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.catalog {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Shop) ByCategory(category string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.catalog {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// AddToCart moves a catalog product into the cart by ID.
func (s *Shop) AddToCart(id string) error {
	p, ok := s.find(id)
	if !ok {
		return ErrNotInCatalog
	}
	s.cart.AddItem(p)
	return nil
}

func (s *Shop) SaveToWishlist(id string) error {
	p, ok := s.find(id)
	if !ok {
		return ErrNotInCatalog
	}
	s.wishlist.AddItem(p)
	return nil
}

// Checkout posts the cart as an order. No stock or price validation happens
// here; the server is authoritative at order creation. The cart is cleared
// only after the order succeeds.
func (s *Shop) Checkout(ctx context.Context) (*models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	req := models.CreateOrderRequest{Items: make([]models.OrderItem, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, s.session.Token(), req)
	if err != nil {
		s.logger.Warn("Checkout failed", zap.Error(err))
		return nil, err
	}

	s.cart.Clear()
	return order, nil
}

func (s *Shop) find(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
