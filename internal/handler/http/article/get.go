package article

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	artUC "sk-api/internal/usecase/article"
)

// get godoc
// @Summary      Article details
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID" format(uuid)
// @Success      200 {object} artUC.DTO
// @Failure      400 {object} map[string]string "Malformed id"
// @Failure      404 {object} map[string]string
// @Router       /articles/{id} [get]
func get(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[artUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		return artUC.DetailsQuery{ID: id}, nil
	})
}
