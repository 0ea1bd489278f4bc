package article

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// CreateHandler serves POST /articles.
type CreateHandler struct{ Svc *catalog.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AuthorID   string `json:"author_id"`
		MagazineID string `json:"magazine_id"`
		Title      string `json:"title"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.PublishArticle(r.Context(), catalog.PublishInput{
		AuthorID:   req.AuthorID,
		MagazineID: req.MagazineID,
		Title:      req.Title,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	w.Header().Set("Location", "/articles/"+a.ID)
	respond.JSON(w, http.StatusCreated, dto.FromArticle(a))
}
