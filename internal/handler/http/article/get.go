package article

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// GetHandler serves GET /articles/{id}.
type GetHandler struct{ Svc *catalog.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetArticle(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromArticle(a))
}
