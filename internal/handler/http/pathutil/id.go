// Package pathutil extracts resource IDs from request paths and normalizes
// paths into low-cardinality metric labels.
package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the {id} path value is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// ID returns the {id} path value of r in canonical UUID form.
func ID(r *http.Request) (string, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
