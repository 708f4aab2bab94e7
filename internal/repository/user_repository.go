package repository

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// UserRepository reads and writes accounts. Lookups return (nil, nil) when
// nothing matches. Email and username comparisons are case-insensitive.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.AppUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AppUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AppUser, error)
	Create(ctx context.Context, user *entity.AppUser) error
	Delete(ctx context.Context, id uuid.UUID) error
}
