package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed.
	// Every *ValidationError matches it with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrImmutableField indicates an attempt to change a write-once field.
	ErrImmutableField = errors.New("field cannot be changed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ImmutableFieldError is returned when a write-once field is assigned a second time.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s cannot be changed after it has been set", e.Field)
}

func (e *ImmutableFieldError) Unwrap() error {
	return ErrImmutableField
}
