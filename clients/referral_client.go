package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/skip2/go-qrcode"

	"storefront-client/models"
)

// ReferralAPI renders the affiliate program's numbers. Commission math,
// reward locking and payout approval all live server-side.
type ReferralAPI interface {
	CreateLink(ctx context.Context, token, productID string) (*models.ReferralLink, error)
	Links(ctx context.Context, token string) ([]models.ReferralLink, error)
	ToggleLink(ctx context.Context, token, id string) (*models.ReferralLink, error)
	Stats(ctx context.Context, token string) (*models.ReferralStats, error)
	Analytics(ctx context.Context, token string) ([]models.ReferralDay, error)
	Balance(ctx context.Context, token string) (*models.ReferralBalance, error)
	Payouts(ctx context.Context, token string) ([]models.ReferralPayout, error)
}

type ReferralClient struct {
	api *Client
}

func NewReferralClient(api *Client) *ReferralClient {
	return &ReferralClient{api: api}
}

type createLinkRequest struct {
	ProductID string `json:"product_id"`
}

func (r *ReferralClient) CreateLink(ctx context.Context, token, productID string) (*models.ReferralLink, error) {
	var link models.ReferralLink
	err := r.api.DoJSON(ctx, http.MethodPost, "/api/referrals/links/", nil, token, createLinkRequest{ProductID: productID}, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ReferralClient) Links(ctx context.Context, token string) ([]models.ReferralLink, error) {
	var links []models.ReferralLink
	if err := r.api.DoJSON(ctx, http.MethodGet, "/api/referrals/links/", nil, token, nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ReferralClient) ToggleLink(ctx context.Context, token, id string) (*models.ReferralLink, error) {
	var link models.ReferralLink
	if err := r.api.DoJSON(ctx, http.MethodPost, "/api/referrals/links/"+id+"/toggle/", nil, token, nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ReferralClient) Stats(ctx context.Context, token string) (*models.ReferralStats, error) {
	var stats models.ReferralStats
	if err := r.api.DoJSON(ctx, http.MethodGet, "/api/referrals/stats/", nil, token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ReferralClient) Analytics(ctx context.Context, token string) ([]models.ReferralDay, error) {
	var days []models.ReferralDay
	if err := r.api.DoJSON(ctx, http.MethodGet, "/api/referrals/analytics/", nil, token, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *ReferralClient) Balance(ctx context.Context, token string) (*models.ReferralBalance, error) {
	var balance models.ReferralBalance
	if err := r.api.DoJSON(ctx, http.MethodGet, "/api/referrals/balance/", nil, token, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *ReferralClient) Payouts(ctx context.Context, token string) ([]models.ReferralPayout, error) {
	var payouts []models.ReferralPayout
	if err := r.api.DoJSON(ctx, http.MethodGet, "/api/referrals/payouts/", nil, token, nil, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

// RenderLinkQR encodes a referral link's URL as a PNG for sharing offline.
func RenderLinkQR(link models.ReferralLink) ([]byte, error) {
	if link.URL == "" {
		return nil, errors.New("referral link has no URL")
	}
	return qrcode.Encode(link.URL, qrcode.Medium, 256)
}
