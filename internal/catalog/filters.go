package catalog

import (
	"sort"

	"github.com/samber/lo"
)

// PriceRange is a display-side price bucket. Filtering is a pure transform
// over an already-normalized product slice.
type PriceRange string

const (
	PriceAll     PriceRange = "all"
	PriceUnder20 PriceRange = "under20"
	Price20To40  PriceRange = "20-40"
	Price40To60  PriceRange = "40-60"
	PriceOver60  PriceRange = "over60"
)

// PriceRanges lists the buckets in display order.
var PriceRanges = []PriceRange{PriceAll, PriceUnder20, Price20To40, Price40To60, PriceOver60}

// Label returns the button text for a bucket.
func (r PriceRange) Label() string {
	switch r {
	case PriceUnder20:
		return "Under $20"
	case Price20To40:
		return "$20 - $40"
	case Price40To60:
		return "$40 - $60"
	case PriceOver60:
		return "Over $60"
	default:
		return "All Prices"
	}
}

// ParsePriceRange maps a query value to a bucket, defaulting to all.
func ParsePriceRange(value string) PriceRange {
	switch PriceRange(value) {
	case PriceUnder20, Price20To40, Price40To60, PriceOver60:
		return PriceRange(value)
	default:
		return PriceAll
	}
}

// Matches reports whether a price falls inside the bucket.
func (r PriceRange) Matches(price float64) bool {
	switch r {
	case PriceUnder20:
		return price < 20
	case Price20To40:
		return price >= 20 && price < 40
	case Price40To60:
		return price >= 40 && price < 60
	case PriceOver60:
		return price >= 60
	default:
		return true
	}
}

// FilterByPrice returns the products inside the bucket. The input slice is
// never mutated.
func FilterByPrice(products []Product, r PriceRange) []Product {
	if r == PriceAll {
		return products
	}
	return lo.Filter(products, func(p Product, _ int) bool {
		return r.Matches(p.Price)
	})
}

// SortOrder selects the price sort strategy.
type SortOrder string

const (
	SortNone    SortOrder = ""
	SortLowHigh SortOrder = "low"
	SortHighLow SortOrder = "high"
)

// ParseSortOrder maps a query value to a sort order, defaulting to none.
func ParseSortOrder(value string) SortOrder {
	switch SortOrder(value) {
	case SortLowHigh, SortHighLow:
		return SortOrder(value)
	default:
		return SortNone
	}
}

// SortByPrice returns a new slice sorted by price. The upstream ordering is
// kept for equal prices and the input slice is never mutated.
func SortByPrice(products []Product, order SortOrder) []Product {
	if order == SortNone {
		return products
	}
	sorted := make([]Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortHighLow {
			return sorted[i].Price > sorted[j].Price
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}
