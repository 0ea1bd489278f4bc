package article

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// UpdateHandler serves PATCH /articles/{id}. The title, author and magazine
// may each be replaced; the update is applied only if every present field
// is valid.
type UpdateHandler struct{ Svc *catalog.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title      *string `json:"title"`
		AuthorID   *string `json:"author_id"`
		MagazineID *string `json:"magazine_id"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.UpdateArticle(r.Context(), catalog.UpdateArticleInput{
		ID:         id,
		Title:      req.Title,
		AuthorID:   req.AuthorID,
		MagazineID: req.MagazineID,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.FromArticle(a))
}
