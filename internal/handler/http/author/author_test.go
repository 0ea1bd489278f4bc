package author_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/handler/http/author"
	"magazine-catalog/internal/handler/http/dto"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/usecase/catalog"
)

func passthrough(h http.Handler) http.Handler { return h }

func setup(t *testing.T) (*http.ServeMux, *catalog.Service) {
	t.Helper()
	reg := entity.NewRegistry()
	svc := catalog.NewService(reg,
		memory.NewAuthorRepo(),
		memory.NewMagazineRepo(),
		memory.NewArticleRepo(reg),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	mux := http.NewServeMux()
	author.Register(mux, svc, passthrough)
	return mux, svc
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "created", body: `{"name":"Carry Bradshaw"}`, wantCode: http.StatusCreated},
		{name: "empty name", body: `{"name":""}`, wantCode: http.StatusBadRequest, wantErr: "name"},
		{name: "malformed body", body: `{"name":`, wantCode: http.StatusBadRequest, wantErr: "invalid request body"},
		{name: "unknown field", body: `{"name":"A","age":3}`, wantCode: http.StatusBadRequest, wantErr: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := setup(t)
			rec := do(t, mux, http.MethodPost, "/authors", tt.body)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				assert.Contains(t, rec.Body.String(), tt.wantErr)
				return
			}
			got := decode[dto.Author](t, rec)
			assert.Equal(t, "Carry Bradshaw", got.Name)
			assert.Equal(t, "/authors/"+got.ID, rec.Header().Get("Location"))
		})
	}
}

func TestGetAndListHandlers(t *testing.T) {
	mux, svc := setup(t)
	ctx := context.Background()
	a, err := svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)
	_, err = svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Nathaniel Hawthorne"})
	require.NoError(t, err)

	rec := do(t, mux, http.MethodGet, "/authors/"+a.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.Author{ID: a.ID, Name: "Carry Bradshaw"}, decode[dto.Author](t, rec))

	rec = do(t, mux, http.MethodGet, "/authors/"+strings.ToUpper(a.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code, "upper-case UUIDs are canonicalized")

	rec = do(t, mux, http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]dto.Author](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Nathaniel Hawthorne", list[1].Name)

	rec = do(t, mux, http.MethodGet, "/authors/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodGet, "/authors/42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHandler_Empty(t *testing.T) {
	mux, _ := setup(t)
	rec := do(t, mux, http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRenameHandler_NameIsImmutable(t *testing.T) {
	mux, svc := setup(t)
	a, err := svc.CreateAuthor(context.Background(), catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)

	rec := do(t, mux, http.MethodPut, "/authors/"+a.ID, `{"name":"Carrie"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"rename author: name cannot be changed after it has been set","field":"name"}`, rec.Body.String())

	got, err := svc.GetAuthor(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carry Bradshaw", got.Name)
}

func TestRenameHandler_RejectsBadIDBeforeBody(t *testing.T) {
	mux, svc := setup(t)
	a, err := svc.CreateAuthor(context.Background(), catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "bad id and malformed body", path: "/authors/42", body: `{"name":`, wantCode: http.StatusBadRequest, wantErr: "invalid id"},
		{name: "bad id and empty body", path: "/authors/not-a-uuid", body: "", wantCode: http.StatusBadRequest, wantErr: "invalid id"},
		{name: "good id and malformed body", path: "/authors/" + a.ID, body: `{"name":`, wantCode: http.StatusBadRequest, wantErr: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErr)
		})
	}
}

func TestRelationHandlers(t *testing.T) {
	mux, svc := setup(t)
	ctx := context.Background()
	carry, err := svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)
	vogue, err := svc.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: "Vogue", Category: "Fashion"})
	require.NoError(t, err)
	gq, err := svc.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: "GQ", Category: "Fashion"})
	require.NoError(t, err)

	rec := do(t, mux, http.MethodGet, "/authors/"+carry.ID+"/topic-areas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"topic_areas":null}`, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/authors/"+carry.ID+"/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, p := range []struct{ mag, title string }{
		{vogue.ID, "How to wear a tutu with style"},
		{gq.ID, "Dating life in NYC"},
		{vogue.ID, "Summer street looks"},
	} {
		rec = do(t, mux, http.MethodPost, "/authors/"+carry.ID+"/articles",
			`{"magazine_id":"`+p.mag+`","title":"`+p.title+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		art := decode[dto.Article](t, rec)
		assert.Equal(t, carry.ID, art.AuthorID)
		assert.Equal(t, p.title, art.Title)
	}

	rec = do(t, mux, http.MethodGet, "/authors/"+carry.ID+"/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.Article](t, rec), 3)

	rec = do(t, mux, http.MethodGet, "/authors/"+carry.ID+"/magazines", "")
	require.Equal(t, http.StatusOK, rec.Code)
	mags := decode[[]dto.Magazine](t, rec)
	require.Len(t, mags, 2)
	assert.Equal(t, []string{"Vogue", "GQ"}, []string{mags[0].Name, mags[1].Name})

	rec = do(t, mux, http.MethodGet, "/authors/"+carry.ID+"/topic-areas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"topic_areas":["Fashion"]}`, rec.Body.String())
}

func TestAddArticleHandler_Errors(t *testing.T) {
	mux, svc := setup(t)
	ctx := context.Background()
	carry, err := svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)
	vogue, err := svc.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: "Vogue", Category: "Fashion"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		authorID string
		body     string
		wantCode int
	}{
		{
			name:     "title too short",
			authorID: carry.ID,
			body:     `{"magazine_id":"` + vogue.ID + `","title":"Hi"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown magazine",
			authorID: carry.ID,
			body:     `{"magazine_id":"` + uuid.NewString() + `","title":"A valid title"}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "malformed magazine id",
			authorID: carry.ID,
			body:     `{"magazine_id":"vogue","title":"A valid title"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown author",
			authorID: uuid.NewString(),
			body:     `{"magazine_id":"` + vogue.ID + `","title":"A valid title"}`,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/authors/"+tt.authorID+"/articles", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	articles, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles, "rejected requests must not register articles")
}

func TestRegister_WrapsWrites(t *testing.T) {
	reg := entity.NewRegistry()
	svc := catalog.NewService(reg, memory.NewAuthorRepo(), memory.NewMagazineRepo(),
		memory.NewArticleRepo(reg), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var wrapped int
	deny := func(http.Handler) http.Handler {
		wrapped++
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	mux := http.NewServeMux()
	author.Register(mux, svc, deny)

	assert.Equal(t, 3, wrapped)
	assert.Equal(t, http.StatusTooManyRequests, do(t, mux, http.MethodPost, "/authors", `{"name":"A"}`).Code)
	assert.Equal(t, http.StatusOK, do(t, mux, http.MethodGet, "/authors", "").Code)
}
