package etsy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dearmomollie/internal/config"
)

const sampleEnvelope = `{
	"success": true,
	"lastSync": "2025-06-01T12:00:00Z",
	"listings": [
		{
			"listing_id": "123",
			"title": "Large Bread Bag",
			"price": {"amount": 2499, "divisor": 100},
			"quantity": 5,
			"state": "active"
		},
		{
			"listing_id": 456,
			"title": "Beeswax Wrap Set"
		}
	]
}`

func TestGetCatalog_Success(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(sampleEnvelope))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	envelope, err := client.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}

	if capturedReq == nil {
		t.Fatal("expected request to be captured")
	}
	if got := capturedReq.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("unexpected Accept header: %q", got)
	}
	if capturedReq.URL.RawQuery != "" {
		t.Fatalf("expected no query params, got %q", capturedReq.URL.RawQuery)
	}

	if len(envelope.Listings) != 2 {
		t.Fatalf("unexpected listings count: %d", len(envelope.Listings))
	}
	if envelope.Listings[0].Title != "Large Bread Bag" {
		t.Fatalf("unexpected title: %q", envelope.Listings[0].Title)
	}
	if envelope.Listings[1].ListingID.String() != "456" {
		t.Fatalf("unexpected numeric listing id: %q", envelope.Listings[1].ListingID)
	}
	if envelope.LastSync != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected lastSync: %q", envelope.LastSync)
	}
}

func TestGetCatalog_ShopScoping(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(`{"success": true, "listings": []}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{
		BaseURL:    server.URL,
		ShopID:     "momollie-main",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if got := capturedReq.URL.Query().Get("shop_id"); got != "momollie-main" {
		t.Fatalf("unexpected shop_id query value: %q", got)
	}

	if _, err := client.GetCatalogForShop(context.Background(), "other-shop"); err != nil {
		t.Fatalf("get catalog for shop: %v", err)
	}
	if got := capturedReq.URL.Query().Get("shop_id"); got != "other-shop" {
		t.Fatalf("unexpected overridden shop_id query value: %q", got)
	}
}

func TestGetCatalog_StatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GetCatalog(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", statusErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCatalog_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.GetCatalog(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse catalog response") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCatalog_BadEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "success false", body: `{"success": false, "listings": []}`},
		{name: "missing listings", body: `{"success": true}`},
		{name: "missing success", body: `{"listings": []}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			client, err := NewClient(config.CatalogConfig{
				BaseURL:    server.URL,
				HTTPClient: server.Client(),
			})
			if err != nil {
				t.Fatalf("new client: %v", err)
			}

			if _, err := client.GetCatalog(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
