package dashboards

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/models"
	"storefront-client/session"
)

// ErrLinkNotFound means the link is not in the last fetched list.
var ErrLinkNotFound = errors.New("referral link not found")

// Referral is the affiliate dashboard. It only renders numbers the server
// tracks; stats, analytics, balance and payouts are fetched fresh per read.
type Referral struct {
	mu      sync.Mutex
	api     clients.ReferralAPI
	session *session.Session
	logger  *zap.Logger

	links []models.ReferralLink
}

func NewReferral(api clients.ReferralAPI, sess *session.Session, logger *zap.Logger) *Referral {
	return &Referral{api: api, session: sess, logger: logger}
}

func (r *Referral) RefreshLinks(ctx context.Context) error {
	links, err := r.api.Links(ctx, r.session.Token())
	if err != nil {
		r.logger.Warn("Failed to load referral links", zap.Error(err))
		return err
	}

	r.mu.Lock()
	r.links = links
	r.mu.Unlock()
	return nil
}

func (r *Referral) Links() []models.ReferralLink {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ReferralLink, len(r.links))
	copy(out, r.links)
	return out
}

func (r *Referral) ActiveLinks() []models.ReferralLink {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ReferralLink
	for _, link := range r.links {
		if link.Active {
			out = append(out, link)
		}
	}
	return out
}

func (r *Referral) CreateLink(ctx context.Context, productID string) (*models.ReferralLink, error) {
	link, err := r.api.CreateLink(ctx, r.session.Token(), productID)
	if err != nil {
		r.logger.Warn("Failed to create referral link", zap.String("product_id", productID), zap.Error(err))
		return nil, err
	}
	r.refetchLinks(ctx)
	return link, nil
}

func (r *Referral) Toggle(ctx context.Context, id string) (*models.ReferralLink, error) {
	link, err := r.api.ToggleLink(ctx, r.session.Token(), id)
	if err != nil {
		r.logger.Warn("Failed to toggle referral link", zap.String("link_id", id), zap.Error(err))
		return nil, err
	}
	r.refetchLinks(ctx)
	return link, nil
}

func (r *Referral) Stats(ctx context.Context) (*models.ReferralStats, error) {
	return r.api.Stats(ctx, r.session.Token())
}

func (r *Referral) Analytics(ctx context.Context) ([]models.ReferralDay, error) {
	return r.api.Analytics(ctx, r.session.Token())
}

func (r *Referral) Balance(ctx context.Context) (*models.ReferralBalance, error) {
	return r.api.Balance(ctx, r.session.Token())
}

func (r *Referral) Payouts(ctx context.Context) ([]models.ReferralPayout, error) {
	return r.api.Payouts(ctx, r.session.Token())
}

// LinkQR renders the QR code for a fetched link.
func (r *Referral) LinkQR(id string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range r.links {
		if link.ID == id {
			return clients.RenderLinkQR(link)
		}
	}
	return nil, ErrLinkNotFound
}

func (r *Referral) refetchLinks(ctx context.Context) {
	if err := r.RefreshLinks(ctx); err != nil {
		r.logger.Warn("Link list refresh after mutation failed", zap.Error(err))
	}
}
