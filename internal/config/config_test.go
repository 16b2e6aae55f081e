package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "")
	t.Setenv("CATALOG_SHOP_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.BaseURL != DefaultCatalogURL {
		t.Errorf("expected default catalog URL, got %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ShopID != "" {
		t.Errorf("expected empty shop id, got %q", cfg.Catalog.ShopID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "https://example.com/catalog")
	t.Setenv("CATALOG_SHOP_ID", "12345678")
	t.Setenv("CLARITY_PROJECT_ID", "abc123")
	t.Setenv("GOOGLE_TAG_ID", "G-TEST")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.BaseURL != "https://example.com/catalog" {
		t.Errorf("unexpected catalog URL %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ShopID != "12345678" {
		t.Errorf("unexpected shop id %q", cfg.Catalog.ShopID)
	}
	if cfg.Analytics.ClarityProjectID != "abc123" || cfg.Analytics.GoogleTagID != "G-TEST" {
		t.Errorf("unexpected analytics config %+v", cfg.Analytics)
	}
}
