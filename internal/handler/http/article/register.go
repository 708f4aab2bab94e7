// Package article exposes the article endpoints.
package article

import (
	"net/http"

	"sk-api/internal/mediator"
)

// Register mounts the article routes. Reads are public; writes go through authz.
func Register(mux *http.ServeMux, m *mediator.Mediator, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", list(m))
	mux.Handle("GET /articles/{id}", get(m))
	mux.Handle("POST /articles", authz(create(m)))
	mux.Handle("PUT /articles/{id}", authz(update(m)))
	mux.Handle("DELETE /articles/{id}", authz(remove(m)))
}
