package article

import (
	"net/http"

	"github.com/google/uuid"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/mediator"
	artUC "sk-api/internal/usecase/article"
)

// create godoc
// @Summary      Create article
// @Description  Creates an article. The id is optional; one is generated when omitted.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body artUC.CreateCommand true "Article"
// @Success      201 {object} endpoint.IDResponse[string]
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      401 {object} map[string]string
// @Router       /articles [post]
func create(m *mediator.Mediator) http.Handler {
	return endpoint.Created[uuid.UUID](m, func(r *http.Request) (mediator.Request, error) {
		var cmd artUC.CreateCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}
