package magazine

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// UpdateHandler serves PATCH /magazines/{id}. Absent fields are left as
// they are; if any present field is invalid nothing is changed.
type UpdateHandler struct{ Svc *catalog.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	m, err := h.Svc.UpdateMagazine(r.Context(), catalog.UpdateMagazineInput{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromMagazine(m))
}
