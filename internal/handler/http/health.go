// Package http wires the catalog's HTTP surface: health checks, metrics,
// the shared middleware chain and the write rate limiter. Resource handlers
// live in the author, magazine and article subpackages.
package http

import (
	"context"
	"net/http"
	"time"

	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// StatsProvider reports the current entity counts.
type StatsProvider interface {
	Stats(ctx context.Context) (catalog.Stats, error)
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Authors   int    `json:"authors"`
	Magazines int    `json:"magazines"`
	Articles  int    `json:"articles"`
}

// HealthHandler serves GET /health.
// It returns 503 when the catalog cannot report its counts.
type HealthHandler struct {
	Svc     StatsProvider
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.Version,
	}

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		resp.Status = "unhealthy"
		respond.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Authors = stats.Authors
	resp.Magazines = stats.Magazines
	resp.Articles = stats.Articles
	respond.JSON(w, http.StatusOK, resp)
}
