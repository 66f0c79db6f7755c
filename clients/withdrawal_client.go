package clients

import (
	"context"
	"net/http"

	"storefront-client/models"
)

type WithdrawalAPI interface {
	Create(ctx context.Context, token string, amount float64) (*models.Withdrawal, error)
	List(ctx context.Context, token string) ([]models.Withdrawal, error)
	Approve(ctx context.Context, token, id string) (*models.Withdrawal, error)
	Reject(ctx context.Context, token, id string) (*models.Withdrawal, error)
}

type WithdrawalClient struct {
	api *Client
}

func NewWithdrawalClient(api *Client) *WithdrawalClient {
	return &WithdrawalClient{api: api}
}

type withdrawalRequest struct {
	Amount float64 `json:"amount"`
}

func (w *WithdrawalClient) Create(ctx context.Context, token string, amount float64) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := w.api.DoJSON(ctx, http.MethodPost, "/api/withdrawals/", nil, token, withdrawalRequest{Amount: amount}, &withdrawal)
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (w *WithdrawalClient) List(ctx context.Context, token string) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	if err := w.api.DoJSON(ctx, http.MethodGet, "/api/withdrawals/", nil, token, nil, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (w *WithdrawalClient) Approve(ctx context.Context, token, id string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	if err := w.api.DoJSON(ctx, http.MethodPost, "/api/withdrawals/"+id+"/approve/", nil, token, nil, &withdrawal); err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (w *WithdrawalClient) Reject(ctx context.Context, token, id string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	if err := w.api.DoJSON(ctx, http.MethodPost, "/api/withdrawals/"+id+"/reject/", nil, token, nil, &withdrawal); err != nil {
		return nil, err
	}
	return &withdrawal, nil
}
