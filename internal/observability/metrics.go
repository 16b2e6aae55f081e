package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogFetchTotal counts catalog fetch cycles by outcome ("ok" or "error").
	CatalogFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_total",
			Help: "Catalog fetch cycles by outcome",
		},
		[]string{"outcome"},
	)

	// ListingsRejectedTotal counts raw listings dropped during normalization.
	ListingsRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_listings_rejected_total",
			Help: "Raw listings rejected during normalization",
		},
	)
)
