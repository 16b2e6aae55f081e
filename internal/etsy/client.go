package etsy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dearmomollie/internal/config"

	"github.com/hashicorp/go-retryablehttp"
)

// Client fetches the raw listing catalog that mirrors our Etsy shop.
type Client struct {
	baseURL    string
	shopID     string
	httpClient *http.Client
}

// NewClient creates a catalog client. When no HTTPClient override is given
// it uses a retrying client with a hard timeout; the upstream function has
// been known to stall.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultCatalogURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse catalog base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = 2
		retryClient.HTTPClient.Timeout = 15 * time.Second
		retryClient.Logger = nil
		httpClient = retryClient.StandardClient()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		shopID:     strings.TrimSpace(cfg.ShopID),
		httpClient: httpClient,
	}, nil
}

// GetCatalog fetches the catalog, scoped to the configured shop when one is set.
func (c *Client) GetCatalog(ctx context.Context) (*Envelope, error) {
	return c.getCatalog(ctx, c.shopID)
}

// GetCatalogForShop fetches the catalog scoped to an explicit shop id.
func (c *Client) GetCatalogForShop(ctx context.Context, shopID string) (*Envelope, error) {
	return c.getCatalog(ctx, strings.TrimSpace(shopID))
}

func (c *Client) getCatalog(ctx context.Context, shopID string) (*Envelope, error) {
	catalogURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog URL: %w", err)
	}
	if shopID != "" {
		params := url.Values{}
		params.Set("shop_id", shopID)
		catalogURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request catalog: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "received catalog response", "status", resp.StatusCode)
		return nil, &StatusError{
			Operation:  "catalog",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	envelope, err := ParseEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("parse catalog response: %w", err)
	}
	return envelope, nil
}
