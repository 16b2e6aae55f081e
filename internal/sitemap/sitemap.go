package sitemap

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"dearmomollie/internal/shop"
)

type Server struct{}

const (
	domain = "https://dearmomollie.com"
	robots = `# Allow all search engines to crawl the site
User-agent: *
Allow: /

# Sitemap location
Sitemap: %s/sitemap.xml
`
)

func New() *Server {
	return &Server{}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Entries returns every indexable page. The site is fully static apart from
// the product grid, so the list is known at compile time.
func Entries() []urlEntry {
	entries := []urlEntry{
		{Loc: domain + "/"},
		{Loc: domain + "/products"},
		{Loc: domain + "/about"},
		{Loc: domain + "/momongo"},
		{Loc: domain + "/blog"},
	}
	for _, post := range shop.Posts {
		entries = append(entries, urlEntry{Loc: domain + "/blog/" + post.Slug})
	}
	return entries
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write sitemap header", "error", err)
		return
	}
	if err := xml.NewEncoder(w).Encode(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  Entries(),
	}); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode sitemap", "error", err)
	}
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	full := fmt.Sprintf(robots, domain)
	if _, err := w.Write([]byte(full)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write robots.txt", "error", err)
	}
}
