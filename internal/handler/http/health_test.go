package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/usecase/catalog"
)

type stubStats struct {
	stats catalog.Stats
	err   error
}

func (s stubStats) Stats(context.Context) (catalog.Stats, error) { return s.stats, s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		svc        stubStats
		wantCode   int
		wantStatus string
		wantCounts [3]int
	}{
		{
			name:       "healthy with counts",
			svc:        stubStats{stats: catalog.Stats{Authors: 2, Magazines: 1, Articles: 3}},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
			wantCounts: [3]int{2, 1, 3},
		},
		{
			name:       "stats failure",
			svc:        stubStats{err: errors.New("count authors: context deadline exceeded")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Svc: tt.svc, Version: "1.2.3"}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

			var body HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, "1.2.3", body.Version)
			assert.Equal(t, tt.wantCounts, [3]int{body.Authors, body.Magazines, body.Articles})
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
