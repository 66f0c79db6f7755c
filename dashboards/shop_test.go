package dashboards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-client/models"
	"storefront-client/storage"
	"storefront-client/stores"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Trail Runner", Price: 89.99, Category: "shoes", Description: "lightweight trail shoe", InStock: true},
		{ID: "p2", Name: "Desk Lamp", Price: 25.00, Category: "home", Description: "warm LED lamp", InStock: true},
		{ID: "p3", Name: "Road Runner", Price: 120.00, Category: "shoes", Description: "carbon plate racer", InStock: false},
	}
}

func newShop(products *mockProductAPI, orders *mockOrderAPI) (*Shop, *stores.CartStore, *stores.WishlistStore) {
	st := storage.NewMemoryStorage()
	cart := stores.NewCartStore(st, zap.NewNop())
	wishlist := stores.NewWishlistStore(st, zap.NewNop())
	shop := NewShop(products, orders, testSession(), cart, wishlist, zap.NewNop())
	return shop, cart, wishlist
}

func TestShopRefresh_FailureKeepsPriorCatalog(t *testing.T) {
	products := &mockProductAPI{list: testCatalog()}
	shop, _, _ := newShop(products, &mockOrderAPI{})

	require.NoError(t, shop.Refresh(context.Background()))
	require.Len(t, shop.Catalog(), 3)

	products.listErr = errors.New("gateway timeout")
	err := shop.Refresh(context.Background())

	assert.Error(t, err)
	assert.Len(t, shop.Catalog(), 3, "prior state stays displayed")
}

func TestShopSearch_CaseInsensitiveOverNameAndDescription(t *testing.T) {
	shop, _, _ := newShop(&mockProductAPI{list: testCatalog()}, &mockOrderAPI{})
	require.NoError(t, shop.Refresh(context.Background()))

	byName := shop.Search("runner")
	assert.Len(t, byName, 2)

	byDescription := shop.Search("LED")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "p2", byDescription[0].ID)
}

func TestShopByCategory(t *testing.T) {
	shop, _, _ := newShop(&mockProductAPI{list: testCatalog()}, &mockOrderAPI{})
	require.NoError(t, shop.Refresh(context.Background()))

	shoes := shop.ByCategory("Shoes")
	assert.Len(t, shoes, 2)
}

func TestShopAddToCart_UnknownProduct(t *testing.T) {
	shop, cart, _ := newShop(&mockProductAPI{list: testCatalog()}, &mockOrderAPI{})
	require.NoError(t, shop.Refresh(context.Background()))

	err := shop.AddToCart("ghost")

	assert.ErrorIs(t, err, ErrNotInCatalog)
	assert.Empty(t, cart.Items())
}

func TestShopSaveToWishlist(t *testing.T) {
	shop, _, wishlist := newShop(&mockProductAPI{list: testCatalog()}, &mockOrderAPI{})
	require.NoError(t, shop.Refresh(context.Background()))

	require.NoError(t, shop.SaveToWishlist("p2"))
	require.NoError(t, shop.SaveToWishlist("p2"))

	assert.Equal(t, 1, wishlist.ItemCount())
	assert.True(t, wishlist.Contains("p2"))
}

func TestShopCheckout_PostsCartAndClearsOnSuccess(t *testing.T) {
	orders := &mockOrderAPI{}
	shop, cart, _ := newShop(&mockProductAPI{list: testCatalog()}, orders)
	require.NoError(t, shop.Refresh(context.Background()))

	require.NoError(t, shop.AddToCart("p1"))
	require.NoError(t, shop.AddToCart("p1"))
	require.NoError(t, shop.AddToCart("p2"))

	order, err := shop.Checkout(context.Background())
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Len(t, orders.lastReq.Items, 2)
	assert.Equal(t, "p1", orders.lastReq.Items[0].ProductID)
	assert.Equal(t, 2, orders.lastReq.Items[0].Quantity)
	assert.Empty(t, cart.Items(), "cart cleared after successful checkout")
}

func TestShopCheckout_FailureKeepsCart(t *testing.T) {
	orders := &mockOrderAPI{createErr: errors.New("insufficient stock")}
	shop, cart, _ := newShop(&mockProductAPI{list: testCatalog()}, orders)
	require.NoError(t, shop.Refresh(context.Background()))
	require.NoError(t, shop.AddToCart("p1"))

	_, err := shop.Checkout(context.Background())

	assert.Error(t, err)
	assert.Len(t, cart.Items(), 1, "cart untouched after failed checkout")
}

func TestShopCheckout_EmptyCart(t *testing.T) {
	shop, _, _ := newShop(&mockProductAPI{}, &mockOrderAPI{})

	_, err := shop.Checkout(context.Background())
	assert.Error(t, err)
}
