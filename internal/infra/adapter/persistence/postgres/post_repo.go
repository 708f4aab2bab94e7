package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
	"sk-api/internal/repository"
)

type PostRepo struct {
	db *gorm.DB
}

func (repo *PostRepo) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error) {
	q := repo.db.WithContext(ctx).Order("created DESC, id")
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	posts := make([]*entity.Post, 0, 16)
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (repo *PostRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var p entity.Post
	found, err := take(repo.db.WithContext(ctx).Where("id = ?", id), &p)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (repo *PostRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&entity.Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("post exists: %w", err)
	}
	return n > 0, nil
}

func (repo *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return createErr("create post", err)
	}
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	res := repo.db.WithContext(ctx).Model(p).Select("*").Updates(p)
	if res.Error != nil {
		return fmt.Errorf("update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("Post", p.ID)
	}
	return nil
}

func (repo *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("Post", id)
	}
	return nil
}
