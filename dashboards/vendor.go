package dashboards

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
)

// Vendor is the vendor dashboard: own products, incoming orders, withdrawal
// requests. Every mutation re-fetches the affected list; a failed re-fetch is
// logged but does not fail the mutation that already succeeded.
type Vendor struct {
	mu          sync.Mutex
	products    clients.ProductAPI
	orders      clients.OrderAPI
	withdrawals clients.WithdrawalAPI
	session     *session.Session
	logger      *zap.Logger

	productList []models.Product
	orderList   []models.Order
}

func NewVendor(products clients.ProductAPI, orders clients.OrderAPI, withdrawals clients.WithdrawalAPI, sess *session.Session, logger *zap.Logger) *Vendor {
	return &Vendor{
		products:    products,
		orders:      orders,
		withdrawals: withdrawals,
		session:     sess,
		logger:      logger,
	}
}

func (v *Vendor) RefreshProducts(ctx context.Context) error {
	list, err := v.products.List(ctx, v.session.Token(), clients.ListOptions{})
	if err != nil {
		v.logger.Warn("Failed to load vendor products", zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.productList = list
	v.mu.Unlock()
	return nil
}

func (v *Vendor) Products() []models.Product {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Product, len(v.productList))
	copy(out, v.productList)
	return out
}

func (v *Vendor) SearchProducts(query string) []models.Product {
	query = strings.ToLower(query)

	v.mu.Lock()
	defer v.mu.Unlock()

	var out []models.Product
	for _, p := range v.productList {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

func (v *Vendor) CreateProduct(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	product, err := v.products.Create(ctx, v.session.Token(), payload)
	if err != nil {
		v.logger.Warn("Failed to create product", zap.Error(err))
		return nil, err
	}
	v.refetchProducts(ctx)
	return product, nil
}

func (v *Vendor) UpdateProduct(ctx context.Context, id string, payload models.ProductPayload) (*models.Product, error) {
	product, err := v.products.Update(ctx, v.session.Token(), id, payload)
	if err != nil {
		v.logger.Warn("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	v.refetchProducts(ctx)
	return product, nil
}

func (v *Vendor) DeleteProduct(ctx context.Context, id string) error {
	if err := v.products.Delete(ctx, v.session.Token(), id); err != nil {
		v.logger.Warn("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}
	v.refetchProducts(ctx)
	return nil
}

// UploadPhotos uploads a batch one photo at a time. Whatever uploaded before a
// failure stays uploaded; there is no rollback.
func (v *Vendor) UploadPhotos(ctx context.Context, id string, photos []clients.Photo) ([]string, error) {
	uploaded, err := v.products.UploadPhotos(ctx, v.session.Token(), id, photos)
	if err != nil {
		v.logger.Warn("Photo upload incomplete",
			zap.String("product_id", id),
			zap.Int("uploaded", len(uploaded)),
			zap.Int("total", len(photos)),
			zap.Error(err),
		)
	}
	if len(uploaded) > 0 {
		v.refetchProducts(ctx)
	}
	return uploaded, err
}

func (v *Vendor) RefreshOrders(ctx context.Context) error {
	list, err := v.orders.List(ctx, v.session.Token())
	if err != nil {
		v.logger.Warn("Failed to load vendor orders", zap.Error(err))
		return err
	}

	v.mu.Lock()
	v.orderList = list
	v.mu.Unlock()
	return nil
}

func (v *Vendor) Orders() []models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Order, len(v.orderList))
	copy(out, v.orderList)
	return out
}

func (v *Vendor) RequestWithdrawal(ctx context.Context, amount float64) (*models.Withdrawal, error) {
	withdrawal, err := v.withdrawals.Create(ctx, v.session.Token(), amount)
	if err != nil {
		v.logger.Warn("Failed to request withdrawal", zap.Float64("amount", amount), zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (v *Vendor) refetchProducts(ctx context.Context) {
	if err := v.RefreshProducts(ctx); err != nil {
		v.logger.Warn("Product list refresh after mutation failed", zap.Error(err))
	}
}
