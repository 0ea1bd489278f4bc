// Package dto holds the JSON shapes shared by the catalog HTTP handlers.
package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"magazine-catalog/internal/handler/http/respond"
	"magazine-catalog/internal/usecase/catalog"
)

// Author is the JSON representation of an author.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Magazine is the JSON representation of a magazine.
type Magazine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Article is the JSON representation of an article with its author and
// magazine inlined by reference.
type Article struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	AuthorID     string `json:"author_id"`
	AuthorName   string `json:"author_name"`
	MagazineID   string `json:"magazine_id"`
	MagazineName string `json:"magazine_name"`
}

// FromAuthor converts a catalog.AuthorView.
func FromAuthor(a catalog.AuthorView) Author {
	return Author{ID: a.ID, Name: a.Name}
}

// FromMagazine converts a catalog.MagazineView.
func FromMagazine(m catalog.MagazineView) Magazine {
	return Magazine{ID: m.ID, Name: m.Name, Category: m.Category}
}

// FromArticle converts a catalog.ArticleView.
func FromArticle(a catalog.ArticleView) Article {
	return Article{
		ID:           a.ID,
		Title:        a.Title,
		AuthorID:     a.AuthorID,
		AuthorName:   a.AuthorName,
		MagazineID:   a.MagazineID,
		MagazineName: a.MagazineName,
	}
}

// Authors converts a slice, always returning a non-nil slice.
func Authors(in []catalog.AuthorView) []Author {
	out := make([]Author, 0, len(in))
	for _, a := range in {
		out = append(out, FromAuthor(a))
	}
	return out
}

// Magazines converts a slice, always returning a non-nil slice.
func Magazines(in []catalog.MagazineView) []Magazine {
	out := make([]Magazine, 0, len(in))
	for _, m := range in {
		out = append(out, FromMagazine(m))
	}
	return out
}

// Articles converts a slice, always returning a non-nil slice.
func Articles(in []catalog.ArticleView) []Article {
	out := make([]Article, 0, len(in))
	for _, a := range in {
		out = append(out, FromArticle(a))
	}
	return out
}

// Decode reads a single JSON object from the request body into v.
// Unknown fields are rejected.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: limit is %d bytes", respond.ErrBodyTooLarge, maxErr.Limit)
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: body is required", respond.ErrMalformedBody)
		default:
			return fmt.Errorf("%w: %s", respond.ErrMalformedBody, err.Error())
		}
	}
	return nil
}
