// Package magazine provides HTTP handlers for magazine endpoints and the
// magazine-centric relationship queries.
package magazine

import (
	"net/http"

	"magazine-catalog/internal/usecase/catalog"
)

// Register registers the magazine routes on mux. Mutating routes are
// wrapped with write.
func Register(mux *http.ServeMux, svc *catalog.Service, write func(http.Handler) http.Handler) {
	mux.Handle("GET /magazines", ListHandler{svc})
	mux.Handle("GET /magazines/{id}", GetHandler{svc})
	mux.Handle("GET /magazines/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /magazines/{id}/contributors", ContributorsHandler{svc})
	mux.Handle("GET /magazines/{id}/article-titles", ArticleTitlesHandler{svc})
	mux.Handle("GET /magazines/{id}/contributing-authors", ContributingAuthorsHandler{svc})

	mux.Handle("POST /magazines", write(CreateHandler{svc}))
	mux.Handle("PATCH /magazines/{id}", write(UpdateHandler{svc}))
}
