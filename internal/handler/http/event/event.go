// Package event exposes the read-only event endpoints.
package event

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	eventUC "sk-api/internal/usecase/event"
)

func Register(mux *http.ServeMux, m *mediator.Mediator) {
	mux.Handle("GET /events", list(m))
	mux.Handle("GET /events/{id}", get(m))
}

// list godoc
// @Summary      List events
// @Description  Latest date first
// @Tags         events
// @Produce      json
// @Success      200 {array} eventUC.DTO
// @Router       /events [get]
func list(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[[]eventUC.DTO](m, http.StatusOK, func(*http.Request) (mediator.Request, error) {
		return eventUC.ListQuery{}, nil
	})
}

// get godoc
// @Summary      Event details
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID" format(uuid)
// @Success      200 {object} eventUC.DTO
// @Failure      404 {object} map[string]string
// @Router       /events/{id} [get]
func get(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[eventUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		return eventUC.DetailsQuery{ID: id}, nil
	})
}
