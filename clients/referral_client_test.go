package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/models"
)

func TestReferralStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/referrals/stats/", r.URL.Path)
		json.NewEncoder(w).Encode(models.ReferralStats{
			TotalClicks:      120,
			TotalConversions: 6,
			TotalCommission:  45.30,
			ConversionRate:   0.05,
		})
	}))
	defer server.Close()

	client := NewReferralClient(New(server.URL))
	stats, err := client.Stats(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 120, stats.TotalClicks)
	assert.Equal(t, 45.30, stats.TotalCommission)
}

func TestReferralToggleLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/referrals/links/l1/toggle/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(models.ReferralLink{ID: "l1", Code: "REF42", Active: false})
	}))
	defer server.Close()

	client := NewReferralClient(New(server.URL))
	link, err := client.ToggleLink(context.Background(), "tok", "l1")
	require.NoError(t, err)
	assert.False(t, link.Active)
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderLinkQR(t *testing.T) {
	png, err := RenderLinkQR(models.ReferralLink{
		ID:   "l1",
		Code: "REF42",
		URL:  "https://shop.example.com/r/REF42",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRenderLinkQR_NoURL(t *testing.T) {
	_, err := RenderLinkQR(models.ReferralLink{ID: "l1", Code: "REF42"})
	assert.Error(t, err)
}
