package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
)

type TestValueRepo struct {
	db *gorm.DB
}

func (repo *TestValueRepo) List(ctx context.Context) ([]*entity.TestValue, error) {
	values := make([]*entity.TestValue, 0, 16)
	if err := repo.db.WithContext(ctx).Order("id").Find(&values).Error; err != nil {
		return nil, fmt.Errorf("list test values: %w", err)
	}
	return values, nil
}

func (repo *TestValueRepo) Get(ctx context.Context, id int64) (*entity.TestValue, error) {
	var tv entity.TestValue
	found, err := take(repo.db.WithContext(ctx).Where("id = ?", id), &tv)
	if err != nil {
		return nil, fmt.Errorf("get test value: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &tv, nil
}

// Create inserts tv and fills in the generated id.
func (repo *TestValueRepo) Create(ctx context.Context, tv *entity.TestValue) error {
	if err := repo.db.WithContext(ctx).Create(tv).Error; err != nil {
		return createErr("create test value", err)
	}
	return nil
}

func (repo *TestValueRepo) Update(ctx context.Context, tv *entity.TestValue) error {
	res := repo.db.WithContext(ctx).Model(tv).Select("*").Updates(tv)
	if res.Error != nil {
		return fmt.Errorf("update test value: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("TestValue", tv.ID)
	}
	return nil
}

func (repo *TestValueRepo) Delete(ctx context.Context, id int64) error {
	res := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.TestValue{})
	if res.Error != nil {
		return fmt.Errorf("delete test value: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.NewNotFound("TestValue", id)
	}
	return nil
}
