package article_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/handler/http/article"
	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/usecase/catalog"
)

type fixture struct {
	mux    *http.ServeMux
	svc    *catalog.Service
	carry  catalog.AuthorView
	nathan catalog.AuthorView
	vogue  catalog.MagazineView
	gq     catalog.MagazineView
}

func setup(t *testing.T) *fixture {
	t.Helper()
	reg := entity.NewRegistry()
	svc := catalog.NewService(reg,
		memory.NewAuthorRepo(),
		memory.NewMagazineRepo(),
		memory.NewArticleRepo(reg),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux := http.NewServeMux()
	article.Register(mux, svc, func(h http.Handler) http.Handler { return h })

	ctx := context.Background()
	f := &fixture{mux: mux, svc: svc}
	var err error
	f.carry, err = svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)
	f.nathan, err = svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Nathaniel Hawthorne"})
	require.NoError(t, err)
	f.vogue, err = svc.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: "Vogue", Category: "Fashion"})
	require.NoError(t, err)
	f.gq, err = svc.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: "GQ", Category: "Fashion"})
	require.NoError(t, err)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(method, path, rdr))
	return rec
}

func (f *fixture) publish(t *testing.T, title string) catalog.ArticleView {
	t.Helper()
	a, err := f.svc.PublishArticle(context.Background(), catalog.PublishInput{
		AuthorID: f.carry.ID, MagazineID: f.vogue.ID, Title: title,
	})
	require.NoError(t, err)
	return a
}

func TestCreateHandler(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "created",
			body:     `{"author_id":"` + f.carry.ID + `","magazine_id":"` + f.vogue.ID + `","title":"How to wear a tutu"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "title at lower bound",
			body:     `{"author_id":"` + f.carry.ID + `","magazine_id":"` + f.vogue.ID + `","title":"Tutus"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "title too short",
			body:     `{"author_id":"` + f.carry.ID + `","magazine_id":"` + f.vogue.ID + `","title":"Tutu"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "title too long",
			body:     `{"author_id":"` + f.carry.ID + `","magazine_id":"` + f.vogue.ID + `","title":"` + strings.Repeat("x", 51) + `"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown author",
			body:     `{"author_id":"` + uuid.NewString() + `","magazine_id":"` + f.vogue.ID + `","title":"How to wear a tutu"}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing magazine",
			body:     `{"author_id":"` + f.carry.ID + `","title":"How to wear a tutu"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/articles", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	articles, err := f.svc.ListArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 2, "only the accepted requests are registered")
}

func TestGetAndListHandlers(t *testing.T) {
	f := setup(t)
	first := f.publish(t, "How to wear a tutu")
	f.publish(t, "Dating life in NYC")

	rec := f.do(http.MethodGet, "/articles/"+first.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.Article
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	want := dto.Article{
		ID:           first.ID,
		Title:        "How to wear a tutu",
		AuthorID:     f.carry.ID,
		AuthorName:   "Carry Bradshaw",
		MagazineID:   f.vogue.ID,
		MagazineName: "Vogue",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GET /articles/{id} mismatch (-want +got):\n%s", diff)
	}

	rec = f.do(http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.Article
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "Dating life in NYC", list[1].Title)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/articles/"+uuid.NewString(), "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/articles/1", "").Code)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      func(f *fixture) string
		wantCode  int
		wantTitle string
		wantAuth  func(f *fixture) catalog.AuthorView
		wantMag   func(f *fixture) catalog.MagazineView
	}{
		{
			name:      "retitle",
			body:      func(*fixture) string { return `{"title":"Tutus for everyone"}` },
			wantCode:  http.StatusOK,
			wantTitle: "Tutus for everyone",
			wantAuth:  func(f *fixture) catalog.AuthorView { return f.carry },
			wantMag:   func(f *fixture) catalog.MagazineView { return f.vogue },
		},
		{
			name: "move to other author and magazine",
			body: func(f *fixture) string {
				return `{"author_id":"` + f.nathan.ID + `","magazine_id":"` + f.gq.ID + `"}`
			},
			wantCode:  http.StatusOK,
			wantTitle: "How to wear a tutu",
			wantAuth:  func(f *fixture) catalog.AuthorView { return f.nathan },
			wantMag:   func(f *fixture) catalog.MagazineView { return f.gq },
		},
		{
			name: "invalid title rolls back reassignment",
			body: func(f *fixture) string {
				return `{"author_id":"` + f.nathan.ID + `","magazine_id":"` + f.gq.ID + `","title":"Hi"}`
			},
			wantCode:  http.StatusBadRequest,
			wantTitle: "How to wear a tutu",
			wantAuth:  func(f *fixture) catalog.AuthorView { return f.carry },
			wantMag:   func(f *fixture) catalog.MagazineView { return f.vogue },
		},
		{
			name: "unknown magazine leaves article unchanged",
			body: func(f *fixture) string {
				return `{"author_id":"` + f.nathan.ID + `","magazine_id":"` + uuid.NewString() + `"}`
			},
			wantCode:  http.StatusNotFound,
			wantTitle: "How to wear a tutu",
			wantAuth:  func(f *fixture) catalog.AuthorView { return f.carry },
			wantMag:   func(f *fixture) catalog.MagazineView { return f.vogue },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			art := f.publish(t, "How to wear a tutu")

			rec := f.do(http.MethodPatch, "/articles/"+art.ID, tt.body(f))

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			got, err := f.svc.GetArticle(context.Background(), art.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantAuth(f).ID, got.AuthorID)
			assert.Equal(t, tt.wantMag(f).ID, got.MagazineID)
		})
	}
}

func TestUpdateHandler_ReassignmentIsLive(t *testing.T) {
	f := setup(t)
	art := f.publish(t, "How to wear a tutu")

	rec := f.do(http.MethodPatch, "/articles/"+art.ID, `{"author_id":"`+f.nathan.ID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	carryArticles, err := f.svc.AuthorArticles(context.Background(), f.carry.ID)
	require.NoError(t, err)
	assert.Empty(t, carryArticles)

	nathanArticles, err := f.svc.AuthorArticles(context.Background(), f.nathan.ID)
	require.NoError(t, err)
	require.Len(t, nathanArticles, 1)
	assert.Equal(t, art.ID, nathanArticles[0].ID)
	assert.Equal(t, "Nathaniel Hawthorne", nathanArticles[0].AuthorName)
}
