package catalog

// Category is the closed set of shop categories. It is always inferred from
// listing titles and tags, never provided by the upstream feed.
type Category string

const (
	CategoryBreadBags          Category = "bread-bags"
	CategoryKitchenAccessories Category = "kitchen-accessories"
	CategorySustainableStorage Category = "sustainable-storage"
)

// Product is the display-ready shape every presentation consumer agrees on:
// the server-rendered grid, the /api/products route, and the structured-data
// emitter. Products are never mutated after normalization.
type Product struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Price            float64  `json:"price"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
	Image            string   `json:"image"`
	EtsyURL          string   `json:"etsyUrl"`
	InStock          bool     `json:"inStock"`
	Materials        []string `json:"materials"`
	Dimensions       string   `json:"dimensions,omitempty"`
	CareInstructions []string `json:"careInstructions"`
}

// CategoryInfo describes a category for navigation and the home page.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// Categories lists the shop categories in display order.
var Categories = []CategoryInfo{
	{
		ID:          CategoryBreadBags,
		Name:        "Beeswax Bread Bags",
		Description: "Keep your homemade bread fresh naturally",
	},
	{
		ID:          CategoryKitchenAccessories,
		Name:        "Kitchen Accessories",
		Description: "Artisan tools for the modern baker",
	},
	{
		ID:          CategorySustainableStorage,
		Name:        "Sustainable Storage",
		Description: "Eco-friendly solutions for your kitchen",
	},
}
