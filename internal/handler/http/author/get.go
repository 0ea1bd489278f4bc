package author

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// ListHandler serves GET /authors.
type ListHandler struct{ Svc *catalog.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Svc.ListAuthors(r.Context())
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Authors(authors))
}

// GetHandler serves GET /authors/{id}.
type GetHandler struct{ Svc *catalog.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetAuthor(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromAuthor(a))
}
