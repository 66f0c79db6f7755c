package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/common/apierrors"
)

func TestDoJSON_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	api := New(server.URL)
	err := api.DoJSON(context.Background(), http.MethodGet, "/api/auth/profile/", nil, "tok-1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoJSON_NoTokenMeansNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	api := New(server.URL)
	require.NoError(t, api.DoJSON(context.Background(), http.MethodGet, "/api/products/", nil, "", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDoJSON_ErrorFieldPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusConflict, `{"error":"Out of stock"}`, "Out of stock"},
		{"detail field", http.StatusNotFound, `{"detail":"No such order"}`, "No such order"},
		{"error wins over detail", http.StatusBadRequest, `{"error":"a","detail":"b"}`, "a"},
		{"garbage body", http.StatusInternalServerError, `<html>boom</html>`, apierrors.FallbackMessage},
		{"empty body", http.StatusBadGateway, ``, apierrors.FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			api := New(server.URL)
			err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "", nil, nil)
			require.Error(t, err)

			assert.Equal(t, tt.status, apierrors.StatusCode(err))
			assert.Equal(t, tt.message, apierrors.UserMessage(err))
		})
	}
}

func TestDoJSON_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer server.Close()

	api := New(server.URL)
	err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "bad", nil, nil)

	assert.True(t, apierrors.IsUnauthorized(err))
	assert.Equal(t, "token expired", apierrors.UserMessage(err))
}

func TestDoJSON_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	api := New(server.URL)
	err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "", nil, nil)

	require.Error(t, err)
	assert.Equal(t, 0, apierrors.StatusCode(err))
	assert.False(t, apierrors.IsUnauthorized(err))
}

type strictResponse struct {
	ID string `json:"id" validate:"required"`
}

func TestDoJSON_SchemaValidationAtBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":""}`))
	}))
	defer server.Close()

	api := New(server.URL)
	var out strictResponse
	err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "", nil, &out)

	require.Error(t, err)
	assert.Equal(t, 0, apierrors.StatusCode(err))
}

func TestDoJSON_SchemaValidationOfListElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"ok"},{"id":""}]`))
	}))
	defer server.Close()

	api := New(server.URL)
	var out []strictResponse
	err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "", nil, &out)

	assert.Error(t, err)
}

func TestDoJSON_MalformedJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	}))
	defer server.Close()

	api := New(server.URL)
	var out strictResponse
	err := api.DoJSON(context.Background(), http.MethodGet, "/x", nil, "", nil, &out)

	assert.Error(t, err)
}
