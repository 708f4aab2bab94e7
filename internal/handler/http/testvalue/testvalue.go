// Package testvalue exposes the TestValue endpoints.
package testvalue

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	tvUC "sk-api/internal/usecase/testvalue"
)

func Register(mux *http.ServeMux, m *mediator.Mediator, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /testvalues", authz(list(m)))
	mux.Handle("GET /testvalues/{id}", authz(get(m)))
	mux.Handle("POST /testvalues", authz(create(m)))
	mux.Handle("PUT /testvalues/{id}", authz(update(m)))
	mux.Handle("DELETE /testvalues/{id}", authz(remove(m)))
}

// list godoc
// @Summary      List test values
// @Tags         testvalues
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} tvUC.DTO
// @Router       /testvalues [get]
func list(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[[]tvUC.DTO](m, http.StatusOK, func(*http.Request) (mediator.Request, error) {
		return tvUC.ListQuery{}, nil
	})
}

// get godoc
// @Summary      Test value details
// @Tags         testvalues
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "TestValue ID"
// @Success      200 {object} tvUC.DTO
// @Failure      404 {object} map[string]string
// @Router       /testvalues/{id} [get]
func get(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[tvUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.ID(r, "id")
		if err != nil {
			return nil, err
		}
		return tvUC.DetailsQuery{ID: id}, nil
	})
}

// create godoc
// @Summary      Create test value
// @Tags         testvalues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        value body tvUC.CreateCommand true "Value"
// @Success      201 {object} endpoint.IDResponse[int64]
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Router       /testvalues [post]
func create(m *mediator.Mediator) http.Handler {
	return endpoint.Created[int64](m, func(r *http.Request) (mediator.Request, error) {
		var cmd tvUC.CreateCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}

// update godoc
// @Summary      Rename test value
// @Tags         testvalues
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "TestValue ID"
// @Param        value body tvUC.EditCommand true "Value"
// @Success      204
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      404 {object} map[string]string
// @Router       /testvalues/{id} [put]
func update(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.ID(r, "id")
		if err != nil {
			return nil, err
		}
		var cmd tvUC.EditCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		cmd.ID = id
		return cmd, nil
	})
}

// remove godoc
// @Summary      Delete test value
// @Tags         testvalues
// @Security     BearerAuth
// @Param        id path int true "TestValue ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /testvalues/{id} [delete]
func remove(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.ID(r, "id")
		if err != nil {
			return nil, err
		}
		return tvUC.DeleteCommand{ID: id}, nil
	})
}
