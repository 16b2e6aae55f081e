package shop

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"dearmomollie/internal/catalog"
	"dearmomollie/internal/templates"
)

// EtsyShopURL is the external marketplace storefront every checkout goes to.
const EtsyShopURL = "https://dearmomollie.etsy.com"

// productsSource is the slice of the catalog fetcher the pages need.
type productsSource interface {
	Fetch(ctx context.Context) (*catalog.Catalog, error)
	Products(ctx context.Context) []catalog.Product
}

type server struct {
	fetcher productsSource
}

// NewHandler returns the handler serving the storefront pages and the
// products API route.
func NewHandler(fetcher productsSource) *server {
	return &server{fetcher: fetcher}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /momongo", s.handleMomongo)
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /blog", s.handleBlog)
	mux.HandleFunc("GET /blog/{slug}", s.handleBlogPost)
	mux.HandleFunc("GET /api/products", s.handleAPIProducts)
}

func analyticsScripts() template.HTML {
	return templates.ClarityScript() + templates.GoogleTagScript()
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Analytics   template.HTML
		Categories  []catalog.CategoryInfo
		EtsyShopURL string
	}{
		Analytics:   analyticsScripts(),
		Categories:  catalog.Categories,
		EtsyShopURL: EtsyShopURL,
	}
	if err := templates.Home.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "home template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (s *server) handleAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Analytics template.HTML
	}{
		Analytics: analyticsScripts(),
	}
	if err := templates.About.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "about template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// handleMomongo serves the static page for the automation platform that
// syncs this shop's catalog.
func (s *server) handleMomongo(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Analytics template.HTML
	}{
		Analytics: analyticsScripts(),
	}
	if err := templates.Momongo.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "momongo template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// productView pairs a product with its render-only derivations.
type productView struct {
	Product        catalog.Product
	CategoryName   string
	StructuredData template.HTML
}

type rangeView struct {
	Value    catalog.PriceRange
	Label    string
	Selected bool
}

func (s *server) handleProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// An empty catalog is a normal state here, not an error: the page
	// degrades to the Etsy call-to-action.
	products := s.fetcher.Products(ctx)

	priceRange := catalog.ParsePriceRange(r.URL.Query().Get("price"))
	sortOrder := catalog.ParseSortOrder(r.URL.Query().Get("sort"))
	visible := catalog.SortByPrice(catalog.FilterByPrice(products, priceRange), sortOrder)

	views := make([]productView, 0, len(visible))
	for _, product := range visible {
		structured, err := product.StructuredData()
		if err != nil {
			slog.WarnContext(ctx, "failed to build product structured data", "id", product.ID, "error", err)
		}
		views = append(views, productView{
			Product:        product,
			CategoryName:   categoryName(product.Category),
			StructuredData: structured,
		})
	}

	ranges := make([]rangeView, 0, len(catalog.PriceRanges))
	for _, pr := range catalog.PriceRanges {
		ranges = append(ranges, rangeView{Value: pr, Label: pr.Label(), Selected: pr == priceRange})
	}

	data := struct {
		Analytics   template.HTML
		Products    []productView
		Ranges      []rangeView
		Price       catalog.PriceRange
		Sort        string
		EtsyShopURL string
	}{
		Analytics:   analyticsScripts(),
		Products:    views,
		Ranges:      ranges,
		Price:       priceRange,
		Sort:        string(sortOrder),
		EtsyShopURL: EtsyShopURL,
	}
	if err := templates.Products.Execute(w, data); err != nil {
		slog.ErrorContext(ctx, "products template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (s *server) handleBlog(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Analytics template.HTML
		Posts     []BlogPost
	}{
		Analytics: analyticsScripts(),
		Posts:     Posts,
	}
	if err := templates.Blog.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "blog template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (s *server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := PostBySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		Analytics template.HTML
		Post      BlogPost
	}{
		Analytics: analyticsScripts(),
		Post:      post,
	}
	if err := templates.BlogPost.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "blog post template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// categoryName turns a category id into its display name.
func categoryName(category catalog.Category) string {
	for _, info := range catalog.Categories {
		if info.ID == category {
			return info.Name
		}
	}
	return strings.ReplaceAll(string(category), "-", " ")
}
