package clients

import (
	"context"
	"net/http"

	"storefront-client/models"
)

// AuthAPI is the authentication surface consumed by the session holder.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.Credentials, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Credentials, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, user models.User) (*models.User, error)
}

type AuthClient struct {
	api *Client
}

func NewAuthClient(api *Client) *AuthClient {
	return &AuthClient{api: api}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthClient) Login(ctx context.Context, username, password string) (*models.Credentials, error) {
	var creds models.Credentials
	err := a.api.DoJSON(ctx, http.MethodPost, "/api/auth/login/", nil, "", loginRequest{
		Username: username,
		Password: password,
	}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Credentials, error) {
	var creds models.Credentials
	if err := a.api.DoJSON(ctx, http.MethodPost, "/api/auth/register/", nil, "", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (a *AuthClient) Profile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := a.api.DoJSON(ctx, http.MethodGet, "/api/auth/profile/", nil, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthClient) UpdateProfile(ctx context.Context, token string, user models.User) (*models.User, error) {
	var updated models.User
	if err := a.api.DoJSON(ctx, http.MethodPut, "/api/auth/profile/", nil, token, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
