package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
)

type UserRepo struct {
	db *gorm.DB
}

func (repo *UserRepo) first(ctx context.Context, op string, query string, arg any) (*entity.AppUser, error) {
	var u entity.AppUser
	found, err := take(repo.db.WithContext(ctx).Where(query, arg), &u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

func (repo *UserRepo) Get(ctx context.Context, id uuid.UUID) (*entity.AppUser, error) {
	return repo.first(ctx, "get user", "id = ?", id)
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.AppUser, error) {
	return repo.first(ctx, "get user by username", "LOWER(username) = LOWER(?)", username)
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.AppUser, error) {
	return repo.first(ctx, "get user by email", "LOWER(email) = LOWER(?)", email)
}

func (repo *UserRepo) Create(ctx context.Context, u *entity.AppUser) error {
	if err := repo.db.WithContext(ctx).Create(u).Error; err != nil {
		return createErr("create user", err)
	}
	return nil
}

func (repo *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.AppUser{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("User", id)
	}
	return nil
}
