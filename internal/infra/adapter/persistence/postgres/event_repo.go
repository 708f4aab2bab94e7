package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sk-api/internal/domain/entity"
)

type EventRepo struct {
	db *gorm.DB
}

// List returns every event, latest date first. Equal dates fall back to id order.
func (repo *EventRepo) List(ctx context.Context) ([]*entity.Event, error) {
	events := make([]*entity.Event, 0, 16)
	if err := repo.db.WithContext(ctx).Order("date DESC, id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (repo *EventRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var e entity.Event
	found, err := take(repo.db.WithContext(ctx).Where("id = ?", id), &e)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &e, nil
}

func (repo *EventRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&entity.Event{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("event exists: %w", err)
	}
	return n > 0, nil
}

func (repo *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	if err := repo.db.WithContext(ctx).Create(e).Error; err != nil {
		return createErr("create event", err)
	}
	return nil
}

type UserEventRepo struct {
	db *gorm.DB
}

func (repo *UserEventRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEvent, error) {
	var out []*entity.UserEvent
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("date_joined, event_id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}
	return out, nil
}

func (repo *UserEventRepo) Create(ctx context.Context, ue *entity.UserEvent) error {
	if err := repo.db.WithContext(ctx).Create(ue).Error; err != nil {
		return createErr("create user event", err)
	}
	return nil
}

func (repo *UserEventRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.UserEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete user events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
