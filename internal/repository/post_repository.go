package repository

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// PostFilter narrows List. A nil EventID lists posts of every event.
type PostFilter struct {
	EventID *uuid.UUID
}

// PostRepository reads and writes posts.
// Get returns (nil, nil) when the post does not exist.
type PostRepository interface {
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
