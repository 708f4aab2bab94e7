package article

import (
	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// DTO is the read model of an article.
type DTO struct {
	ID       uuid.UUID `json:"id" swaggertype:"string" format:"uuid" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Title    string    `json:"title" example:"Go 1.24 released"`
	Image    *string   `json:"image" example:"https://example.com/cover.png"`
	Abstract string    `json:"abstract"`
	Content  string    `json:"content"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:       a.ID,
		Title:    a.Title,
		Image:    a.Image,
		Abstract: a.Abstract,
		Content:  a.Content,
	}
}
