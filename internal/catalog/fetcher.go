package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"dearmomollie/internal/config"
	"dearmomollie/internal/etsy"
	"dearmomollie/internal/observability"
)

// catalogSource is the slice of the etsy client the fetcher needs.
type catalogSource interface {
	GetCatalog(ctx context.Context) (*etsy.Envelope, error)
}

// Catalog is one fetch cycle's worth of normalized products. Each cycle is a
// fresh, independent read; nothing is carried over between fetches.
type Catalog struct {
	Products []Product
	LastSync string
}

// Fetcher retrieves the raw catalog and normalizes it, absorbing transport
// and envelope failures so callers only ever see products or a clean error.
type Fetcher struct {
	source     catalogSource
	normalizer *Normalizer
}

func NewFetcher(cfg config.CatalogConfig) (*Fetcher, error) {
	client, err := etsy.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}
	return NewFetcherWithSource(client, NewNormalizer(NormalizerOptions{})), nil
}

func NewFetcherWithSource(source catalogSource, normalizer *Normalizer) *Fetcher {
	if normalizer == nil {
		normalizer = NewNormalizer(NormalizerOptions{})
	}
	return &Fetcher{source: source, normalizer: normalizer}
}

// Fetch runs one catalog cycle. Transport errors, bad status, and bad
// envelopes are all total failure; a bad envelope never yields a partial
// catalog. Individual bad listings, whether undecodable or failing
// normalization, are dropped and logged without aborting their siblings.
func (f *Fetcher) Fetch(ctx context.Context) (*Catalog, error) {
	envelope, err := f.source.GetCatalog(ctx)
	if err != nil {
		observability.CatalogFetchTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	for _, decodeErr := range envelope.Undecodable {
		observability.ListingsRejectedTotal.Inc()
		slog.WarnContext(ctx, "rejected catalog listing", "error", decodeErr)
	}

	products := make([]Product, 0, len(envelope.Listings))
	for _, listing := range envelope.Listings {
		product, err := f.normalizer.Normalize(listing)
		if err != nil {
			observability.ListingsRejectedTotal.Inc()
			slog.WarnContext(ctx, "rejected catalog listing", "error", err)
			continue
		}
		products = append(products, *product)
	}

	observability.CatalogFetchTotal.WithLabelValues("ok").Inc()
	return &Catalog{
		Products: products,
		LastSync: envelope.LastSync,
	}, nil
}

// Products is the page-rendering path: on any failure it logs and returns an
// empty slice so pages degrade to their empty state instead of erroring.
func (f *Fetcher) Products(ctx context.Context) []Product {
	catalog, err := f.Fetch(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "catalog unavailable", "error", err)
		return []Product{}
	}
	return catalog.Products
}

// Ready probes the upstream catalog once for the readiness check.
func (f *Fetcher) Ready(ctx context.Context) error {
	_, err := f.source.GetCatalog(ctx)
	return err
}
