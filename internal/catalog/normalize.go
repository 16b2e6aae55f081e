package catalog

import (
	"fmt"
	"strings"

	"dearmomollie/internal/etsy"

	"github.com/samber/lo"
)

// maxFeatures caps the derived feature list for card layouts.
const maxFeatures = 5

// NormalizerOptions hoists the fixed values normalization bakes into every
// product so tests can override them.
type NormalizerOptions struct {
	PlaceholderImage       string
	PlaceholderDescription string
	// ListingBaseURL builds the fallback purchase link when a listing has no url.
	ListingBaseURL   string
	CareInstructions []string
}

// DefaultNormalizerOptions returns the production constants.
func DefaultNormalizerOptions() NormalizerOptions {
	return NormalizerOptions{
		PlaceholderImage:       "/products/placeholder.jpg",
		PlaceholderDescription: "Handcrafted sustainable product",
		ListingBaseURL:         "https://dearmomollie.etsy.com",
		CareInstructions: []string{
			"Hand wash in cool water with mild soap",
			"Air dry completely before storing",
			"Keep away from direct heat sources",
		},
	}
}

// Normalizer maps one raw listing to at most one Product. It is pure: no
// network, no storage, and the same listing always yields the same product.
type Normalizer struct {
	opts NormalizerOptions
}

func NewNormalizer(opts NormalizerOptions) *Normalizer {
	defaults := DefaultNormalizerOptions()
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = defaults.PlaceholderImage
	}
	if opts.PlaceholderDescription == "" {
		opts.PlaceholderDescription = defaults.PlaceholderDescription
	}
	if opts.ListingBaseURL == "" {
		opts.ListingBaseURL = defaults.ListingBaseURL
	}
	if len(opts.CareInstructions) == 0 {
		opts.CareInstructions = defaults.CareInstructions
	}
	opts.ListingBaseURL = strings.TrimRight(opts.ListingBaseURL, "/")
	return &Normalizer{opts: opts}
}

// Normalize converts a raw listing into a Product or returns a rejection
// error. Rejections never abort a batch; the fetcher logs and moves on.
func (n *Normalizer) Normalize(listing etsy.Listing) (*Product, error) {
	if listing.ListingID.IsZero() || listing.Title == "" {
		return nil, fmt.Errorf("listing %q: missing identity fields", listing.ListingID)
	}

	id, err := listing.ListingID.Int()
	if err != nil {
		return nil, err
	}

	var price float64
	if listing.Price != nil && listing.Price.Amount != 0 && listing.Price.Divisor != 0 {
		price = listing.Price.Amount / listing.Price.Divisor
	}

	tags := lo.Map(listing.Tags, func(tag string, _ int) string {
		return strings.ToLower(tag)
	})

	product := &Product{
		ID:               id,
		Name:             listing.Title,
		Category:         categorize(listing.Title, tags),
		Price:            price,
		Description:      listing.Description,
		Features:         n.features(listing.Materials, tags),
		Image:            n.image(listing.Images),
		EtsyURL:          listing.URL,
		InStock:          listing.Quantity > 0 && listing.State == "active",
		Materials:        listing.Materials,
		CareInstructions: n.opts.CareInstructions,
	}

	if product.Description == "" {
		product.Description = n.opts.PlaceholderDescription
	}
	if product.EtsyURL == "" {
		product.EtsyURL = fmt.Sprintf("%s/listing/%s", n.opts.ListingBaseURL, listing.ListingID)
	}
	if product.Materials == nil {
		product.Materials = []string{}
	}
	if listing.ItemDimensionsUnit != "" {
		product.Dimensions = fmt.Sprintf(`%s" x %s" x %s"`,
			orUnknown(listing.ItemLength),
			orUnknown(listing.ItemWidth),
			orUnknown(listing.ItemHeight),
		)
	}

	return product, nil
}

// categorize infers the category from the title and lowercased tags.
// "bread bag" wins over "storage" when both match.
func categorize(title string, loweredTags []string) Category {
	lowered := strings.ToLower(title)
	switch {
	case strings.Contains(lowered, "bread bag") || lo.Contains(loweredTags, "bread bag"):
		return CategoryBreadBags
	case strings.Contains(lowered, "storage") || lo.Contains(loweredTags, "storage"):
		return CategorySustainableStorage
	default:
		return CategoryKitchenAccessories
	}
}

func (n *Normalizer) features(materials, loweredTags []string) []string {
	features := make([]string, 0, maxFeatures)
	if lo.Contains(materials, "Organic cotton") {
		features = append(features, "Made with organic cotton")
	}
	if lo.Contains(materials, "beeswax") {
		features = append(features, "Natural beeswax coating")
	}
	features = append(features, "Handcrafted with care")
	features = append(features, "Sustainable and eco-friendly")
	if lo.Contains(loweredTags, "reusable") {
		features = append(features, "Reusable and long-lasting")
	}
	if lo.Contains(loweredTags, "plastic free") {
		features = append(features, "100% plastic-free")
	}

	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}
	return features
}

func (n *Normalizer) image(images []etsy.ListingImage) string {
	if len(images) == 0 {
		return n.opts.PlaceholderImage
	}
	first := images[0]
	switch {
	case first.URL570xN != "":
		return first.URL570xN
	case first.URLFullxfull != "":
		return first.URLFullxfull
	default:
		return n.opts.PlaceholderImage
	}
}

func orUnknown(value string) string {
	if value == "" {
		return "?"
	}
	return value
}
