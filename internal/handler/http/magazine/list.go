package magazine

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// ListHandler serves GET /magazines.
type ListHandler struct{ Svc *catalog.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	magazines, err := h.Svc.ListMagazines(r.Context())
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Magazines(magazines))
}
