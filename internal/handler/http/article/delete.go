package article

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	artUC "sk-api/internal/usecase/article"
)

// remove godoc
// @Summary      Delete article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "Article ID" format(uuid)
// @Success      204
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /articles/{id} [delete]
func remove(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		return artUC.DeleteCommand{ID: id}, nil
	})
}
