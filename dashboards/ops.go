package dashboards

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
)

// ErrOrderNotFound means the order is not in the last fetched queue.
var ErrOrderNotFound = errors.New("order not in queue")

// Ops is the operations console: a queue of orders that staff progress along
// the fulfilment pipeline.
type Ops struct {
	mu      sync.Mutex
	orders  clients.OrderAPI
	session *session.Session
	logger  *zap.Logger

	queue []models.Order
}

func NewOps(orders clients.OrderAPI, sess *session.Session, logger *zap.Logger) *Ops {
	return &Ops{orders: orders, session: sess, logger: logger}
}

func (o *Ops) Refresh(ctx context.Context) error {
	list, err := o.orders.List(ctx, o.session.Token())
	if err != nil {
		o.logger.Warn("Failed to load order queue", zap.Error(err))
		return err
	}

	o.mu.Lock()
	o.queue = list
	o.mu.Unlock()
	return nil
}

func (o *Ops) Queue() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]models.Order, len(o.queue))
	copy(out, o.queue)
	return out
}

// ByStatus filters the fetched queue client-side.
func (o *Ops) ByStatus(status string) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []models.Order
	for _, order := range o.queue {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out
}

// Advance moves an order to the next pipeline status and re-fetches the
// queue. Delivered and cancelled orders cannot advance.
func (o *Ops) Advance(ctx context.Context, id string) (*models.Order, error) {
	o.mu.Lock()
	var current *models.Order
	for i := range o.queue {
		if o.queue[i].ID == id {
			current = &o.queue[i]
			break
		}
	}
	if current == nil {
		o.mu.Unlock()
		return nil, ErrOrderNotFound
	}
	next, ok := models.NextOrderStatus(current.Status)
	o.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("order %s cannot advance from %q", id, current.Status)
	}

	order, err := o.orders.UpdateStatus(ctx, o.session.Token(), id, next)
	if err != nil {
		o.logger.Warn("Failed to advance order",
			zap.String("order_id", id),
			zap.String("next_status", next),
			zap.Error(err),
		)
		return nil, err
	}

	if err := o.Refresh(ctx); err != nil {
		o.logger.Warn("Queue refresh after advance failed", zap.Error(err))
	}
	return order, nil
}
