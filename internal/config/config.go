package config

import (
	"net/http"
	"os"
)

// DefaultCatalogURL is the public catalog endpoint that mirrors our Etsy shop.
const DefaultCatalogURL = "https://us-central1-momongo-a83ea.cloudfunctions.net/getPublicCatalog"

type Config struct {
	Catalog   CatalogConfig   `json:"catalog"`
	Analytics AnalyticsConfig `json:"analytics"`
}

type CatalogConfig struct {
	BaseURL string `json:"base_url"`
	// ShopID optionally scopes the catalog request to a single shop.
	ShopID string `json:"shop_id"`
	// HTTPClient overrides the default retrying client, mainly for tests.
	HTTPClient *http.Client `json:"-"`
}

type AnalyticsConfig struct {
	ClarityProjectID string `json:"clarity_project_id"`
	GoogleTagID      string `json:"google_tag_id"`
}

func Load() (*Config, error) {
	config := &Config{
		Catalog: CatalogConfig{
			BaseURL: getEnvOrDefault("CATALOG_API_URL", DefaultCatalogURL),
			ShopID:  os.Getenv("CATALOG_SHOP_ID"),
		},
		Analytics: AnalyticsConfig{
			ClarityProjectID: os.Getenv("CLARITY_PROJECT_ID"),
			GoogleTagID:      os.Getenv("GOOGLE_TAG_ID"),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
