package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/domain/entity"
	"sk-api/internal/observability/logging"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{"map", http.StatusOK, map[string]string{"message": "success"}, `{"message":"success"}`},
		{"struct", http.StatusCreated, struct {
			ID int `json:"id"`
		}{ID: 123}, `{"id":123}`},
		{"nil", http.StatusNoContent, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "validation errors grouped by field",
			err: fmt.Errorf("create article: %w", entity.ValidationErrors{
				{Field: "title", Message: "Title is required."},
				{Field: "title", Message: "Title must not exceed 255 characters."},
				{Field: "content", Message: "Content is required."},
			}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"errors":{"content":["Content is required."],"title":["Title is required.","Title must not exceed 255 characters."]}}`,
		},
		{
			name:     "single validation error",
			err:      &entity.ValidationError{Field: "image", Message: "Image must use http or https scheme."},
			wantCode: http.StatusBadRequest,
			wantBody: `{"errors":{"image":["Image must use http or https scheme."]}}`,
		},
		{
			name:     "invalid input",
			err:      fmt.Errorf("%w: id must be a UUID", entity.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid input: id must be a UUID"}`,
		},
		{
			name:     "typed not found",
			err:      fmt.Errorf("edit article: %w", entity.NewNotFound("Article", uuid.Nil)),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Article not found"}`,
		},
		{
			name:     "sentinel not found",
			err:      entity.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"not found"}`,
		},
		{
			name:     "authentication",
			err:      entity.ErrAuthenticationFailed,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"unauthorized"}`,
		},
		{
			name:     "internal",
			err:      errors.New("dial tcp: postgres://app:hunter2@db:5432/sk"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Failure(context.Background(), w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestFailure_LogsSanitizedInternalError(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	w := httptest.NewRecorder()
	Failure(ctx, w, errors.New("connect postgres://app:hunter2@db:5432/sk failed"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "internal server error", entry["msg"])
	assert.Equal(t, "connect postgres://app:****@db:5432/sk failed", entry["error"])
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestFailure_NilWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()
	Failure(context.Background(), w, nil)
	assert.Equal(t, 0, w.Body.Len())
}
