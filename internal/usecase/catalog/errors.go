// Package catalog provides use cases for managing authors, magazines and articles.
// It resolves entities by ID through the repositories, applies writes through
// the domain entities so every validation rule holds, and exposes the derived
// relationship queries.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrAuthorNotFound indicates that no author exists with the given ID.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that no magazine exists with the given ID.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrArticleNotFound indicates that no article exists with the given ID.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidID indicates that an ID is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid id")
)
