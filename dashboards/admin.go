package dashboards

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
)

// Admin is the superadmin panel: withdrawal approvals and cross-vendor
// orders. Balance math behind approvals lives server-side.
type Admin struct {
	mu          sync.Mutex
	withdrawals clients.WithdrawalAPI
	orders      clients.OrderAPI
	session     *session.Session
	logger      *zap.Logger

	withdrawalList []models.Withdrawal
	orderList      []models.Order
}

func NewAdmin(withdrawals clients.WithdrawalAPI, orders clients.OrderAPI, sess *session.Session, logger *zap.Logger) *Admin {
	return &Admin{
		withdrawals: withdrawals,
		orders:      orders,
		session:     sess,
		logger:      logger,
	}
}

func (a *Admin) RefreshWithdrawals(ctx context.Context) error {
	list, err := a.withdrawals.List(ctx, a.session.Token())
	if err != nil {
		a.logger.Warn("Failed to load withdrawals", zap.Error(err))
		return err
	}

	a.mu.Lock()
	a.withdrawalList = list
	a.mu.Unlock()
	return nil
}

func (a *Admin) Withdrawals() []models.Withdrawal {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Withdrawal, len(a.withdrawalList))
	copy(out, a.withdrawalList)
	return out
}

// Pending filters the fetched list client-side.
func (a *Admin) Pending() []models.Withdrawal {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []models.Withdrawal
	for _, w := range a.withdrawalList {
		if w.Status == models.WithdrawalStatusPending {
			out = append(out, w)
		}
	}
	return out
}

func (a *Admin) Approve(ctx context.Context, id string) (*models.Withdrawal, error) {
	withdrawal, err := a.withdrawals.Approve(ctx, a.session.Token(), id)
	if err != nil {
		a.logger.Warn("Failed to approve withdrawal", zap.String("withdrawal_id", id), zap.Error(err))
		return nil, err
	}
	a.refetchWithdrawals(ctx)
	return withdrawal, nil
}

func (a *Admin) Reject(ctx context.Context, id string) (*models.Withdrawal, error) {
	withdrawal, err := a.withdrawals.Reject(ctx, a.session.Token(), id)
	if err != nil {
		a.logger.Warn("Failed to reject withdrawal", zap.String("withdrawal_id", id), zap.Error(err))
		return nil, err
	}
	a.refetchWithdrawals(ctx)
	return withdrawal, nil
}

func (a *Admin) RefreshOrders(ctx context.Context) error {
	list, err := a.orders.List(ctx, a.session.Token())
	if err != nil {
		a.logger.Warn("Failed to load orders", zap.Error(err))
		return err
	}

	a.mu.Lock()
	a.orderList = list
	a.mu.Unlock()
	return nil
}

func (a *Admin) Orders() []models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Order, len(a.orderList))
	copy(out, a.orderList)
	return out
}

func (a *Admin) refetchWithdrawals(ctx context.Context) {
	if err := a.RefreshWithdrawals(ctx); err != nil {
		a.logger.Warn("Withdrawal list refresh after mutation failed", zap.Error(err))
	}
}
