package entity

import (
	"fmt"
	"unicode/utf8"
)

// Field length bounds, inclusive, counted in characters.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters.
func ValidateMagazineName(name string) error {
	return validateLength("name", name, MagazineNameMinLength, MagazineNameMaxLength)
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title is between 5 and 50 characters.
func ValidateTitle(title string) error {
	return validateLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength)
}

func validateLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", field, minLen, maxLen),
		}
	}
	return nil
}

// validateAuthorRef checks that an author reference is usable by an article
// stored in reg.
func validateAuthorRef(reg *Registry, a *Author) error {
	if a == nil {
		return &ValidationError{Field: "author", Message: "author must be an instance of Author"}
	}
	if a.reg != reg {
		return &ValidationError{Field: "author", Message: "author must belong to the same registry"}
	}
	return nil
}

// validateMagazineRef checks that a magazine reference is usable by an
// article stored in reg.
func validateMagazineRef(reg *Registry, m *Magazine) error {
	if m == nil {
		return &ValidationError{Field: "magazine", Message: "magazine must be an instance of Magazine"}
	}
	if m.reg != reg {
		return &ValidationError{Field: "magazine", Message: "magazine must belong to the same registry"}
	}
	return nil
}
