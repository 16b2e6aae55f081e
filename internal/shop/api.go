package shop

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dearmomollie/internal/catalog"
)

// productsCacheControl advises shared caches on the products payload:
// 5 minutes fresh, 10 minutes stale-while-revalidate.
const productsCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

type productsResponse struct {
	Success  bool              `json:"success"`
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
	LastSync string            `json:"lastSync,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *server) handleAPIProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := s.fetcher.Fetch(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "products api fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Error:   "Failed to fetch products",
			Message: err.Error(),
		})
		return
	}

	w.Header().Set("Cache-Control", productsCacheControl)
	writeJSON(w, http.StatusOK, productsResponse{
		Success:  true,
		Products: result.Products,
		Count:    len(result.Products),
		LastSync: result.LastSync,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}
