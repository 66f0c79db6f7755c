package clients

import (
	"context"
	"net/http"

	"storefront-client/models"
)

// OrderAPI covers order creation and the role-scoped status transitions. The
// server decides which orders a token may see or move; the client just asks.
type OrderAPI interface {
	Create(ctx context.Context, token string, req models.CreateOrderRequest) (*models.Order, error)
	List(ctx context.Context, token string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, token, id, status string) (*models.Order, error)
	Cancel(ctx context.Context, token, id string) (*models.Order, error)
}

type OrderClient struct {
	api *Client
}

func NewOrderClient(api *Client) *OrderClient {
	return &OrderClient{api: api}
}

func (o *OrderClient) Create(ctx context.Context, token string, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := o.api.DoJSON(ctx, http.MethodPost, "/api/orders/", nil, token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *OrderClient) List(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := o.api.DoJSON(ctx, http.MethodGet, "/api/orders/", nil, token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type statusRequest struct {
	Status string `json:"status"`
}

func (o *OrderClient) UpdateStatus(ctx context.Context, token, id, status string) (*models.Order, error) {
	var order models.Order
	err := o.api.DoJSON(ctx, http.MethodPost, "/api/orders/"+id+"/status/", nil, token, statusRequest{Status: status}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *OrderClient) Cancel(ctx context.Context, token, id string) (*models.Order, error) {
	var order models.Order
	if err := o.api.DoJSON(ctx, http.MethodPost, "/api/orders/"+id+"/cancel/", nil, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
