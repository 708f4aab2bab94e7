package post

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	postUC "sk-api/internal/usecase/post"
)

// list godoc
// @Summary      List posts
// @Description  Newest first. eventId narrows the list to one event.
// @Tags         posts
// @Security     BearerAuth
// @Produce      json
// @Param        eventId query string false "Event ID" format(uuid)
// @Success      200 {array} postUC.DTO
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /posts [get]
func list(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[[]postUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		var q postUC.ListQuery
		if raw := r.URL.Query().Get("eventId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: eventId must be a UUID", entity.ErrInvalidInput)
			}
			q.EventID = &id
		}
		return q, nil
	})
}

// get godoc
// @Summary      Post details
// @Tags         posts
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Post ID" format(uuid)
// @Success      200 {object} postUC.DTO
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /posts/{id} [get]
func get(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[postUC.DTO](m, http.StatusOK, byID(func(id uuid.UUID) mediator.Request {
		return postUC.DetailsQuery{ID: id}
	}))
}

// create godoc
// @Summary      Create post
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        post body postUC.CreateCommand true "Post"
// @Success      201 {object} endpoint.IDResponse[string]
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      401 {object} map[string]string
// @Router       /posts [post]
func create(m *mediator.Mediator) http.Handler {
	return endpoint.Created[uuid.UUID](m, func(r *http.Request) (mediator.Request, error) {
		var cmd postUC.CreateCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}

// update godoc
// @Summary      Edit post
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Post ID" format(uuid)
// @Param        post body postUC.EditCommand true "Post"
// @Success      204
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /posts/{id} [put]
func update(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		var cmd postUC.EditCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		cmd.ID = id
		return cmd, nil
	})
}

// pin godoc
// @Summary      Pin post
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID" format(uuid)
// @Success      204
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /posts/{id}/pin [put]
func pin(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, byID(func(id uuid.UUID) mediator.Request {
		return postUC.PinCommand{ID: id}
	}))
}

// unpin godoc
// @Summary      Unpin post
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID" format(uuid)
// @Success      204
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /posts/{id}/unpin [put]
func unpin(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, byID(func(id uuid.UUID) mediator.Request {
		return postUC.UnpinCommand{ID: id}
	}))
}

// remove godoc
// @Summary      Delete post
// @Tags         posts
// @Security     BearerAuth
// @Param        id path string true "Post ID" format(uuid)
// @Success      204
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /posts/{id} [delete]
func remove(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, byID(func(id uuid.UUID) mediator.Request {
		return postUC.DeleteCommand{ID: id}
	}))
}

func byID(build func(uuid.UUID) mediator.Request) endpoint.Bind {
	return func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		return build(id), nil
	}
}
