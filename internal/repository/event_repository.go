package repository

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
)

// EventRepository reads events. List returns events latest date first.
type EventRepository interface {
	List(ctx context.Context) ([]*entity.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, event *entity.Event) error
}

// UserEventRepository maintains event attendance.
type UserEventRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEvent, error)
	Create(ctx context.Context, ue *entity.UserEvent) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
