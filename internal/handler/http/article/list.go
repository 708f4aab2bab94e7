package article

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/mediator"
	artUC "sk-api/internal/usecase/article"
)

// list godoc
// @Summary      List articles
// @Description  Returns every article, newest first
// @Tags         articles
// @Produce      json
// @Success      200 {array} artUC.DTO
// @Failure      500 {object} map[string]string
// @Router       /articles [get]
func list(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[[]artUC.DTO](m, http.StatusOK, func(*http.Request) (mediator.Request, error) {
		return artUC.ListQuery{}, nil
	})
}
