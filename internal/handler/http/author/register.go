// Package author provides HTTP handlers for author endpoints and the
// author-centric relationship queries.
package author

import (
	"net/http"

	"magazine-catalog/internal/usecase/catalog"
)

// Register registers the author routes on mux. Mutating routes are wrapped
// with write, which typically applies rate limiting.
func Register(mux *http.ServeMux, svc *catalog.Service, write func(http.Handler) http.Handler) {
	mux.Handle("GET /authors", ListHandler{svc})
	mux.Handle("GET /authors/{id}", GetHandler{svc})
	mux.Handle("GET /authors/{id}/articles", ArticlesHandler{svc})
	mux.Handle("GET /authors/{id}/magazines", MagazinesHandler{svc})
	mux.Handle("GET /authors/{id}/topic-areas", TopicAreasHandler{svc})

	mux.Handle("POST /authors", write(CreateHandler{svc}))
	mux.Handle("POST /authors/{id}/articles", write(AddArticleHandler{svc}))
	mux.Handle("PUT /authors/{id}", write(RenameHandler{svc}))
}
