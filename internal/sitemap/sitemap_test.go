package sitemap

import (
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dearmomollie/internal/shop"
)

func TestSitemap(t *testing.T) {
	mux := http.NewServeMux()
	New().Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var set urlSet
	if err := xml.Unmarshal(rec.Body.Bytes(), &set); err != nil {
		t.Fatalf("failed to parse sitemap: %v", err)
	}

	locs := make(map[string]bool, len(set.URLs))
	for _, u := range set.URLs {
		locs[u.Loc] = true
	}
	for _, want := range []string{
		domain + "/",
		domain + "/products",
		domain + "/about",
		domain + "/momongo",
		domain + "/blog",
	} {
		if !locs[want] {
			t.Errorf("sitemap missing %s", want)
		}
	}
	for _, post := range shop.Posts {
		if !locs[domain+"/blog/"+post.Slug] {
			t.Errorf("sitemap missing blog post %s", post.Slug)
		}
	}
}

func TestRobots(t *testing.T) {
	mux := http.NewServeMux()
	New().Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sitemap: "+domain+"/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line:\n%s", body)
	}
	if !strings.Contains(body, "User-agent: *") {
		t.Errorf("robots.txt missing user-agent line:\n%s", body)
	}
}
