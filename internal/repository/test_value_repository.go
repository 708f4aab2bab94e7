package repository

import (
	"context"

	"sk-api/internal/domain/entity"
)

// TestValueRepository reads and writes test values. List is ordered by id.
type TestValueRepository interface {
	List(ctx context.Context) ([]*entity.TestValue, error)
	Get(ctx context.Context, id int64) (*entity.TestValue, error)
	Create(ctx context.Context, tv *entity.TestValue) error
	Update(ctx context.Context, tv *entity.TestValue) error
	Delete(ctx context.Context, id int64) error
}
