package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/handler/http/requestid"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:        ":0",
		MetricsAddr:     "",
		LogLevel:        "error",
		LogFormat:       "json",
		WriteRateRPS:    1000,
		WriteRateBurst:  1000,
		ShutdownTimeout: time.Second,
		MaxBodyBytes:    1 << 10,
		Version:         "test",
	}
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func call(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestHandler_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(newHandler(testConfig(), newService(discard()), discard()))
	defer srv.Close()

	resp, author := call(t, srv, http.MethodPost, "/authors", `{"name":"Carry Bradshaw"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.RequestIDHeader))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	resp, mag := call(t, srv, http.MethodPost, "/magazines", `{"name":"Vogue","category":"Fashion"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	authorID, magID := author["id"].(string), mag["id"].(string)
	for _, title := range []string{"How to wear a tutu", "Dating life in NYC", "Summer street looks"} {
		resp, _ = call(t, srv, http.MethodPost, "/articles",
			`{"author_id":"`+authorID+`","magazine_id":"`+magID+`","title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := call(t, srv, http.MethodGet, "/magazines/"+magID+"/contributing-authors", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	authors := body["authors"].([]any)
	require.Len(t, authors, 1)
	assert.Equal(t, "Carry Bradshaw", authors[0].(map[string]any)["name"])

	resp, body = call(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["articles"])
	assert.Equal(t, "test", body["version"])

	resp, _ = call(t, srv, http.MethodPut, "/authors/"+authorID, `{"name":"Carrie"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodPost, "/authors", `{"name":"`+strings.Repeat("a", 2<<10)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodDelete, "/authors/"+authorID, "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandler_WritesAreRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.WriteRateRPS = 0.001
	cfg.WriteRateBurst = 1
	srv := httptest.NewServer(newHandler(cfg, newService(discard()), discard()))
	defer srv.Close()

	resp, _ := call(t, srv, http.MethodPost, "/authors", `{"name":"Ann"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = call(t, srv, http.MethodPost, "/authors", `{"name":"Bob"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp, _ = call(t, srv, http.MethodGet, "/authors", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "reads are not limited")
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
authors:
  - {key: carry, name: Carry Bradshaw}
magazines:
  - {key: vogue, name: Vogue, category: Fashion}
articles:
  - {author: carry, magazine: vogue, title: How to wear a tutu}
`), 0o600))

	cfg := testConfig()
	cfg.SeedFile = path
	svc := newService(discard())
	require.NoError(t, loadSeed(t.Context(), cfg, svc, discard()))

	stats, err := svc.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Articles)

	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, loadSeed(t.Context(), cfg, newService(discard()), discard()))
}
