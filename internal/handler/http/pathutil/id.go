// Package pathutil parses path parameters and normalizes paths for metric labels.
package pathutil

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// UUID parses the path value name as a UUID.
// Failures wrap entity.ErrInvalidInput.
func UUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", entity.ErrInvalidInput, name)
	}
	return id, nil
}

// ID parses the path value name as a positive integer.
// Failures wrap entity.ErrInvalidInput.
func ID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entity.ErrInvalidInput, name)
	}
	return id, nil
}
