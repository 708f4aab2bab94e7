// Package post exposes the event post endpoints. Every route requires a bearer token.
package post

import (
	"net/http"

	"sk-api/internal/mediator"
)

func Register(mux *http.ServeMux, m *mediator.Mediator, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /posts", authz(list(m)))
	mux.Handle("GET /posts/{id}", authz(get(m)))
	mux.Handle("POST /posts", authz(create(m)))
	mux.Handle("PUT /posts/{id}", authz(update(m)))
	mux.Handle("PUT /posts/{id}/pin", authz(pin(m)))
	mux.Handle("PUT /posts/{id}/unpin", authz(unpin(m)))
	mux.Handle("DELETE /posts/{id}", authz(remove(m)))
}
