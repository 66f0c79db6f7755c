package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"storefront-client/common/apierrors"
	"storefront-client/models"
)

// ListOptions narrow a product listing server-side where the API supports it.
// Dashboards still filter client-side over whatever comes back.
type ListOptions struct {
	Category string
	Search   string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}

// Photo is one product image to upload.
type Photo struct {
	Name    string
	Content []byte
}

type ProductAPI interface {
	List(ctx context.Context, token string, opts ListOptions) ([]models.Product, error)
	Get(ctx context.Context, token, id string) (*models.Product, error)
	Create(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error)
	Update(ctx context.Context, token, id string, payload models.ProductPayload) (*models.Product, error)
	Delete(ctx context.Context, token, id string) error
	UploadPhotos(ctx context.Context, token, id string, photos []Photo) ([]string, error)
}

type ProductClient struct {
	api *Client
}

func NewProductClient(api *Client) *ProductClient {
	return &ProductClient{api: api}
}

func (p *ProductClient) List(ctx context.Context, token string, opts ListOptions) ([]models.Product, error) {
	var products []models.Product
	if err := p.api.DoJSON(ctx, http.MethodGet, "/api/products/", opts.query(), token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *ProductClient) Get(ctx context.Context, token, id string) (*models.Product, error) {
	var product models.Product
	if err := p.api.DoJSON(ctx, http.MethodGet, "/api/products/"+id+"/", nil, token, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Create(ctx context.Context, token string, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := p.api.DoJSON(ctx, http.MethodPost, "/api/products/", nil, token, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update sends a full replacement payload; there is no partial patch.
func (p *ProductClient) Update(ctx context.Context, token, id string, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := p.api.DoJSON(ctx, http.MethodPut, "/api/products/"+id+"/", nil, token, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Delete(ctx context.Context, token, id string) error {
	return p.api.DoJSON(ctx, http.MethodDelete, "/api/products/"+id+"/", nil, token, nil, nil)
}

// UploadPhotos sends each photo as its own multipart request. A failure does
// not roll back photos already uploaded; the names that made it are returned
// alongside the error.
func (p *ProductClient) UploadPhotos(ctx context.Context, token, id string, photos []Photo) ([]string, error) {
	var uploaded []string
	var errs []error

	for _, photo := range photos {
		if err := p.uploadPhoto(ctx, token, id, photo); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", photo.Name, err))
			continue
		}
		uploaded = append(uploaded, photo.Name)
	}
	return uploaded, errors.Join(errs...)
}

func (p *ProductClient) uploadPhoto(ctx context.Context, token, id string, photo Photo) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("photo", photo.Name)
	if err != nil {
		return err
	}
	if _, err := part.Write(photo.Content); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := p.api.do(ctx, http.MethodPost, "/api/products/"+id+"/photos/", nil, token, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return apierrors.FromResponse(resp.StatusCode, raw)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
