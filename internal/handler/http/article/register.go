// Package article provides HTTP handlers for article endpoints.
package article

import (
	"net/http"

	"magazine-catalog/internal/usecase/catalog"
)

// Register registers the article routes on mux. Mutating routes are wrapped
// with write.
func Register(mux *http.ServeMux, svc *catalog.Service, write func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", ListHandler{svc})
	mux.Handle("GET /articles/{id}", GetHandler{svc})

	mux.Handle("POST /articles", write(CreateHandler{svc}))
	mux.Handle("PATCH /articles/{id}", write(UpdateHandler{svc}))
}
