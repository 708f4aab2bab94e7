package testvalue_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sk-api/internal/handler/http/testvalue"
	"sk-api/internal/mediator"
	"sk-api/internal/repository/repotest"
	tvUC "sk-api/internal/usecase/testvalue"
)

func passthrough(next http.Handler) http.Handler { return next }

func TestTestValues(t *testing.T) {
	m := mediator.New(nil)
	tvUC.Register(m, &tvUC.Handlers{Store: repotest.New()})
	mux := http.NewServeMux()
	testvalue.Register(mux, m, passthrough)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	rec := do(http.MethodPost, "/testvalues", `{"name":"Value 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = do(http.MethodPost, "/testvalues", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":{"name":["Name is required."]}}`, rec.Body.String())

	require.Equal(t, http.StatusNoContent, do(http.MethodPut, "/testvalues/1", `{"name":"Renamed"}`).Code)

	rec = do(http.MethodGet, "/testvalues/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Renamed"}`, rec.Body.String())

	rec = do(http.MethodGet, "/testvalues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Renamed"}]`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/testvalues/abc", "").Code)
	require.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/testvalues/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodDelete, "/testvalues/1", "").Code)
}
