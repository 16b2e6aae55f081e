package static

import (
	"crypto/sha256"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
)

//go:embed assets/site.css
var siteCSS []byte

var StyleAssetPath string

func Init() {
	styleHash := fmt.Sprintf("%x", sha256.Sum256(siteCSS))
	StyleAssetPath = fmt.Sprintf("/static/site.%s.css", styleHash[:12])
}

// Register serves static assets under content-hashed paths so they can be
// cached aggressively.
func Register(mux *http.ServeMux) {
	mux.HandleFunc(StyleAssetPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if _, err := w.Write(siteCSS); err != nil {
			slog.ErrorContext(r.Context(), "failed to write site css", "error", err)
		}
	})
}
