// Package endpoint adapts mediator requests to http.Handlers.
//
// A controller supplies a bind function that turns the HTTP request into a
// command or query; the endpoint dispatches it as the authenticated actor and
// writes either the result or respond.Failure.
package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"sk-api/internal/domain/entity"
	"sk-api/internal/handler/http/auth"
	"sk-api/internal/handler/http/respond"
	"sk-api/internal/mediator"
)

// Bind builds the mediator request for r.
type Bind func(r *http.Request) (mediator.Request, error)

// IDResponse is the body of a 201 answer.
type IDResponse[T any] struct {
	ID T `json:"id"`
}

// JSON answers status with the handler result as the body.
func JSON[T any](m *mediator.Mediator, status int, bind Bind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out, ok := dispatch[T](m, w, r, bind)
		if !ok {
			return
		}
		respond.JSON(w, status, out)
	})
}

// Created answers 201 with {"id": result}.
func Created[T any](m *mediator.Mediator, bind Bind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := dispatch[T](m, w, r, bind)
		if !ok {
			return
		}
		respond.JSON(w, http.StatusCreated, IDResponse[T]{ID: id})
	})
}

// NoContent answers 204.
func NoContent(m *mediator.Mediator, bind Bind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := dispatch[mediator.None](m, w, r, bind); ok {
			respond.NoContent(w)
		}
	})
}

func dispatch[T any](m *mediator.Mediator, w http.ResponseWriter, r *http.Request, bind Bind) (T, bool) {
	var zero T
	req, err := bind(r)
	if err != nil {
		respond.Failure(r.Context(), w, err)
		return zero, false
	}
	out, err := mediator.Send[T](r.Context(), m, auth.ActorFrom(r.Context()), req)
	if err != nil {
		respond.Failure(r.Context(), w, err)
		return zero, false
	}
	return out, true
}

// Decode reads a single JSON object from the body into v. Unknown fields are
// rejected. Every failure wraps entity.ErrInvalidInput.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return fmt.Errorf("%w: request body exceeds %d bytes", entity.ErrInvalidInput, tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: request body is empty", entity.ErrInvalidInput)
		default:
			return fmt.Errorf("%w: malformed JSON body", entity.ErrInvalidInput)
		}
	}
	if dec.More() {
		return fmt.Errorf("%w: request body must hold a single JSON object", entity.ErrInvalidInput)
	}
	return nil
}
