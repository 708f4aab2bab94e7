// Package respond writes JSON responses and maps domain failures to status codes.
// Internal error details never reach the client; they are logged with secrets masked.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sk-api/internal/domain/entity"
	"sk-api/internal/observability/logging"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// NoContent writes 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes {"error": message} with code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"error": message})
}

// validationBody is the 400 payload: failure messages grouped by field.
type validationBody struct {
	Errors map[string][]string `json:"errors"`
}

// Failure maps err onto the response:
//
//	entity.ValidationErrors / ValidationError -> 400 {"errors": {field: [messages]}}
//	entity.ErrInvalidInput                    -> 400 {"error": message}
//	entity.ErrNotFound                        -> 404
//	entity.ErrAuthenticationFailed            -> 401
//	anything else                             -> 500 with a generic message
func Failure(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var verrs entity.ValidationErrors
	var verr *entity.ValidationError
	var nf *entity.NotFoundError
	switch {
	case errors.As(err, &verrs):
		JSON(w, http.StatusBadRequest, validationBody{Errors: verrs.Fields()})
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, validationBody{Errors: map[string][]string{verr.Field: {verr.Message}}})
	case errors.Is(err, entity.ErrInvalidInput):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &nf):
		Error(w, http.StatusNotFound, nf.Entity+" not found")
	case errors.Is(err, entity.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, entity.ErrAuthenticationFailed):
		Error(w, http.StatusUnauthorized, "unauthorized")
	default:
		logging.FromContext(ctx).Error("internal server error",
			slog.Any("error", SanitizeError(err)))
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
