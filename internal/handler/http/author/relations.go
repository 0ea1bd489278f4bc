package author

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// ArticlesHandler serves GET /authors/{id}/articles.
type ArticlesHandler struct{ Svc *catalog.Service }

func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.AuthorArticles(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Articles(articles))
}

// MagazinesHandler serves GET /authors/{id}/magazines.
type MagazinesHandler struct{ Svc *catalog.Service }

func (h MagazinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	magazines, err := h.Svc.AuthorMagazines(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Magazines(magazines))
}

// TopicAreasResponse is the body of GET /authors/{id}/topic-areas.
// TopicAreas is null when the author has no articles.
type TopicAreasResponse struct {
	TopicAreas []string `json:"topic_areas"`
}

// TopicAreasHandler serves GET /authors/{id}/topic-areas.
type TopicAreasHandler struct{ Svc *catalog.Service }

func (h TopicAreasHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	areas, ok, err := h.Svc.AuthorTopicAreas(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	if !ok {
		areas = nil
	}
	respond.JSON(w, http.StatusOK, TopicAreasResponse{TopicAreas: areas})
}

// AddArticleHandler serves POST /authors/{id}/articles, publishing an
// article by this author in the given magazine.
type AddArticleHandler struct{ Svc *catalog.Service }

func (h AddArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		MagazineID string `json:"magazine_id"`
		Title      string `json:"title"`
	}
	if err := dto.Decode(r, &req); err != nil {
		respond.Fail(w, err)
		return
	}

	a, err := h.Svc.AddArticle(r.Context(), id, req.MagazineID, req.Title)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	w.Header().Set("Location", "/articles/"+a.ID)
	respond.JSON(w, http.StatusCreated, dto.FromArticle(a))
}
