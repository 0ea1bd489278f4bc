// Package respond provides utilities for sending HTTP responses in JSON format.
// Error responses only echo messages that are safe to show to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/usecase/catalog"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the failure can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Request decoding errors shared by the resource handlers.
var (
	ErrMalformedBody = errors.New("invalid request body")
	ErrBodyTooLarge  = errors.New("request body too large")
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

var safeFragments = []string{
	"validation",
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
	"too large",
	"rate limit",
}

// SafeError writes err as a JSON error response.
// Messages that look like client-facing validation messages are returned
// as-is; anything else, and every 5xx, is logged and replaced with
// "internal server error". Validation errors also report the offending field.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code >= 500 || !isSafe(msg) {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.Any("error", err))
		JSON(w, code, ErrorBody{Error: "internal server error"})
		return
	}

	body := ErrorBody{Error: msg}
	var verr *entity.ValidationError
	var ierr *entity.ImmutableFieldError
	switch {
	case errors.As(err, &verr):
		body.Field = verr.Field
	case errors.As(err, &ierr):
		body.Field = ierr.Field
	}
	JSON(w, code, body)
}

// Fail maps a use-case error to its HTTP status and writes it with SafeError.
func Fail(w http.ResponseWriter, err error) {
	SafeError(w, StatusFor(err), err)
}

// StatusFor returns the HTTP status code for a catalog error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalidID),
		errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrAuthorNotFound),
		errors.Is(err, catalog.ErrMagazineNotFound),
		errors.Is(err, catalog.ErrArticleNotFound),
		errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrImmutableField):
		return http.StatusConflict
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, f := range safeFragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
