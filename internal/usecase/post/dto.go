package post

import (
	"time"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// DTO is the read model of a post.
type DTO struct {
	ID             uuid.UUID  `json:"id" swaggertype:"string" format:"uuid"`
	EventID        uuid.UUID  `json:"eventId" swaggertype:"string" format:"uuid"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Pinned         bool       `json:"pinned"`
	CreatedBy      string     `json:"createdBy"`
	Created        time.Time  `json:"created"`
	LastModifiedBy *string    `json:"lastModifiedBy,omitempty"`
	LastModified   *time.Time `json:"lastModified,omitempty"`
}

func toDTO(p *entity.Post) DTO {
	return DTO{
		ID:             p.ID,
		EventID:        p.EventID,
		Title:          p.Title,
		Content:        p.Content,
		Pinned:         p.Pinned,
		CreatedBy:      p.CreatedBy,
		Created:        p.Created,
		LastModifiedBy: p.LastModifiedBy,
		LastModified:   p.LastModified,
	}
}
