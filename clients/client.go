// Package clients is the API client layer. Every call goes to the remote
// storefront REST API; the client never owns server-side state. Callers attach
// the current bearer token per call, mirroring how each page independently
// reads the session token.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"storefront-client/common/apierrors"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	validate *validator.Validate
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithBreaker guards the transport with a circuit breaker. There is still no
// retry anywhere: an open breaker just turns a dead API into fast failures.
func WithBreaker() Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name: "storefront-api",
		})
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body io.Reader, contentType string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, apierrors.Transport(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	var resp *http.Response
	if c.breaker != nil {
		resp, err = c.breaker.Execute(func() (*http.Response, error) {
			return c.http.Do(req)
		})
	} else {
		resp, err = c.http.Do(req)
	}
	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, apierrors.Transport(err)
	}

	c.logger.Debug("API request completed",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return resp, nil
}

// DoJSON sends an optional JSON body and decodes the JSON response into out.
// Non-2xx responses become *apierrors.Error with the server's error/detail
// message; decoded responses are schema-checked before they reach callers.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, query, token, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return apierrors.FromResponse(resp.StatusCode, raw)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierrors.MalformedResponse(err)
	}
	if err := c.checkSchema(out); err != nil {
		return apierrors.MalformedResponse(err)
	}
	return nil
}

// checkSchema validates decoded payloads against their struct tags so
// unchecked shapes never travel past the client boundary. List responses are
// validated element-wise.
func (c *Client) checkSchema(out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return c.validate.Struct(rv.Interface())
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if rv.Index(i).Kind() != reflect.Struct {
				return nil
			}
			if err := c.validate.Struct(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}
