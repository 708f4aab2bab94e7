package article

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/handler/http/pathutil"
	"sk-api/internal/mediator"
	artUC "sk-api/internal/usecase/article"
)

// update godoc
// @Summary      Edit article
// @Description  Overwrites title, abstract, image and content. The path id wins over any id in the body.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Article ID" format(uuid)
// @Param        article body artUC.EditCommand true "Article"
// @Success      204
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /articles/{id} [put]
func update(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(r *http.Request) (mediator.Request, error) {
		id, err := pathutil.UUID(r, "id")
		if err != nil {
			return nil, err
		}
		var cmd artUC.EditCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		cmd.ID = id
		return cmd, nil
	})
}
