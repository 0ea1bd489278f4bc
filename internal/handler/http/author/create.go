package author

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// CreateHandler serves POST /authors.
type CreateHandler struct{ Svc *catalog.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.CreateAuthor(r.Context(), catalog.CreateAuthorInput{Name: req.Name})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	w.Header().Set("Location", "/authors/"+a.ID)
	respond.JSON(w, http.StatusCreated, dto.FromAuthor(a))
}

// RenameHandler serves PUT /authors/{id}. An author's name is write-once,
// so a well-formed request for an existing author yields 409 Conflict.
type RenameHandler struct{ Svc *catalog.Service }

func (h RenameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}
	if err := h.Svc.RenameAuthor(r.Context(), id, req.Name); err != nil {
		respond.Fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
