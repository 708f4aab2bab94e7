// Package repository declares the persistence ports used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// ArticleRepository reads and writes articles.
// Get returns (nil, nil) when the article does not exist; Update and Delete
// return an entity.NotFoundError instead.
type ArticleRepository interface {
	List(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}
