// Package seed loads an initial catalog from a YAML document.
// Entries are applied through the catalog use cases, so every validation rule
// that guards API writes also guards seeded data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/usecase/catalog"
)

// Document is the seed file layout. Articles refer to authors and magazines
// by their document-local keys.
type Document struct {
	Authors   []AuthorEntry   `yaml:"authors"`
	Magazines []MagazineEntry `yaml:"magazines"`
	Articles  []ArticleEntry  `yaml:"articles"`
}

// AuthorEntry describes one author.
type AuthorEntry struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// MagazineEntry describes one magazine.
type MagazineEntry struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleEntry describes one article.
type ArticleEntry struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Result reports how many entities were created.
type Result struct {
	Authors   int
	Magazines int
	Articles  int
}

// Catalog is the subset of the catalog service the loader needs.
type Catalog interface {
	CreateAuthor(ctx context.Context, in catalog.CreateAuthorInput) (catalog.AuthorView, error)
	CreateMagazine(ctx context.Context, in catalog.CreateMagazineInput) (catalog.MagazineView, error)
	PublishArticle(ctx context.Context, in catalog.PublishInput) (catalog.ArticleView, error)
}

// Errors for malformed seed documents.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnknownKey   = errors.New("unknown key")
	ErrMissingKey   = errors.New("key is required")
)

// Decode parses a seed document. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses the seed document at path.
// The path is expected to come from trusted configuration.
func LoadFile(path string) (*Document, error) {
	// #nosec G304 -- path comes from CATALOG_SEED_FILE, not user input
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Apply creates every entry of doc through c, authors first, then magazines,
// then articles. It stops at the first failing entry and reports its position;
// entries applied before the failure remain.
func Apply(ctx context.Context, c Catalog, doc *Document, logger *slog.Logger) (Result, error) {
	var res Result
	authors := make(map[string]string, len(doc.Authors))
	magazines := make(map[string]string, len(doc.Magazines))

	for i, e := range doc.Authors {
		if err := checkKey(authors, e.Key); err != nil {
			return res, fmt.Errorf("authors[%d]: %w", i, err)
		}
		a, err := c.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: e.Name})
		if err != nil {
			return res, fmt.Errorf("authors[%d]: %w", i, err)
		}
		authors[e.Key] = a.ID
		res.Authors++
	}

	for i, e := range doc.Magazines {
		if err := checkKey(magazines, e.Key); err != nil {
			return res, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		m, err := c.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: e.Name, Category: e.Category})
		if err != nil {
			return res, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		magazines[e.Key] = m.ID
		res.Magazines++
	}

	for i, e := range doc.Articles {
		authorID, ok := authors[e.Author]
		if !ok {
			return res, fmt.Errorf("articles[%d]: author %q: %w", i, e.Author, ErrUnknownKey)
		}
		magazineID, ok := magazines[e.Magazine]
		if !ok {
			return res, fmt.Errorf("articles[%d]: magazine %q: %w", i, e.Magazine, ErrUnknownKey)
		}
		if _, err := c.PublishArticle(ctx, catalog.PublishInput{
			AuthorID:   authorID,
			MagazineID: magazineID,
			Title:      e.Title,
		}); err != nil {
			return res, fmt.Errorf("articles[%d]: %w", i, err)
		}
		res.Articles++
	}

	logger.Info("catalog seeded",
		slog.Int("authors", res.Authors),
		slog.Int("magazines", res.Magazines),
		slog.Int("articles", res.Articles))
	return res, nil
}

func checkKey(seen map[string]string, key string) error {
	if key == "" {
		return ErrMissingKey
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	return nil
}
