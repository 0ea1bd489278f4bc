package magazine

import (
	"net/http"

	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/handler/http/pathutil"
	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// ArticlesHandler serves GET /magazines/{id}/articles.
type ArticlesHandler struct{ Svc *catalog.Service }

func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.MagazineArticles(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Articles(articles))
}

// ContributorsHandler serves GET /magazines/{id}/contributors.
type ContributorsHandler struct{ Svc *catalog.Service }

func (h ContributorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	authors, err := h.Svc.MagazineContributors(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Authors(authors))
}

// ArticleTitlesResponse is the body of GET /magazines/{id}/article-titles.
// Titles is null when the magazine has no articles.
type ArticleTitlesResponse struct {
	Titles []string `json:"titles"`
}

// ArticleTitlesHandler serves GET /magazines/{id}/article-titles.
type ArticleTitlesHandler struct{ Svc *catalog.Service }

func (h ArticleTitlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	titles, ok, err := h.Svc.MagazineArticleTitles(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	if !ok {
		titles = nil
	}
	respond.JSON(w, http.StatusOK, ArticleTitlesResponse{Titles: titles})
}

// ContributingAuthorsResponse is the body of
// GET /magazines/{id}/contributing-authors. Authors is null when no author
// has more than entity.ContributorThreshold articles in the magazine.
type ContributingAuthorsResponse struct {
	Authors []dto.Author `json:"authors"`
}

// ContributingAuthorsHandler serves GET /magazines/{id}/contributing-authors.
type ContributingAuthorsHandler struct{ Svc *catalog.Service }

func (h ContributingAuthorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	authors, ok, err := h.Svc.MagazineContributingAuthors(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	var resp ContributingAuthorsResponse
	if ok {
		resp.Authors = dto.Authors(authors)
	}
	respond.JSON(w, http.StatusOK, resp)
}
