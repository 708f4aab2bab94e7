package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
)

type ArticleRepo struct {
	db *gorm.DB
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, 16)
	if err := repo.db.WithContext(ctx).Order("created DESC, id").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var a entity.Article
	found, err := take(repo.db.WithContext(ctx).Where("id = ?", id), &a)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &a, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&entity.Article{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("article exists: %w", err)
	}
	return n > 0, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	if err := repo.db.WithContext(ctx).Create(a).Error; err != nil {
		return createErr("create article", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	res := repo.db.WithContext(ctx).Model(a).Select("*").Updates(a)
	if res.Error != nil {
		return fmt.Errorf("update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("Article", a.ID)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Article{})
	if res.Error != nil {
		return fmt.Errorf("delete article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("Article", id)
	}
	return nil
}
