package catalog

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

const brandName = "DearMomollie"

// jsonLD mirrors the schema.org Product structured data the product cards
// embed for search engines.
type jsonLD struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Brand       jsonLDBrand `json:"brand"`
	Offers      jsonLDOffer `json:"offers"`
	Material    string      `json:"material"`
	Category    string      `json:"category"`
}

type jsonLDBrand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type jsonLDOffer struct {
	Type          string       `json:"@type"`
	URL           string       `json:"url"`
	PriceCurrency string       `json:"priceCurrency"`
	Price         float64      `json:"price"`
	Availability  string       `json:"availability"`
	Seller        jsonLDSeller `json:"seller"`
}

type jsonLDSeller struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// StructuredData renders the product's ld+json script tag for SEO.
func (p Product) StructuredData() (template.HTML, error) {
	availability := "https://schema.org/OutOfStock"
	if p.InStock {
		availability = "https://schema.org/InStock"
	}

	payload := jsonLD{
		Context:     "https://schema.org/",
		Type:        "Product",
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Brand:       jsonLDBrand{Type: "Brand", Name: brandName},
		Offers: jsonLDOffer{
			Type:          "Offer",
			URL:           p.EtsyURL,
			PriceCurrency: "USD",
			Price:         p.Price,
			Availability:  availability,
			Seller:        jsonLDSeller{Type: "Organization", Name: brandName},
		},
		Material: strings.Join(p.Materials, ", "),
		Category: string(p.Category),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal product structured data: %w", err)
	}
	return template.HTML(fmt.Sprintf(`<script type="application/ld+json">%s</script>`, data)), nil
}
