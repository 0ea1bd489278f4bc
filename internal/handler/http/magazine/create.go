package magazine

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// CreateHandler serves POST /magazines.
type CreateHandler struct{ Svc *catalog.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	m, err := h.Svc.CreateMagazine(r.Context(), catalog.CreateMagazineInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	w.Header().Set("Location", "/magazines/"+m.ID)
	respond.JSON(w, http.StatusCreated, dto.FromMagazine(m))
}
