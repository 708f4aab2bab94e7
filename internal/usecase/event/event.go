// Package event holds the event queries.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
)

// ListQuery lists every event, latest date first.
type ListQuery struct{}

func (ListQuery) Kind() string { return "event.list" }

type DetailsQuery struct {
	ID uuid.UUID
}

func (DetailsQuery) Kind() string { return "event.details" }

// DTO is the read model of an event.
type DTO struct {
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`
}

func toDTO(e *entity.Event) DTO {
	return DTO{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		Category:    e.Category,
		City:        e.City,
		Venue:       e.Venue,
	}
}

// Handlers implements the event queries.
type Handlers struct {
	Store repository.Store
}

func Register(m *mediator.Mediator, h *Handlers) {
	mediator.Register[ListQuery, []DTO](m, h.List, nil)
	mediator.Register[DetailsQuery, DTO](m, h.Details, nil)
}

func (h *Handlers) List(ctx context.Context, _ entity.Actor, _ ListQuery) ([]DTO, error) {
	events, err := h.Store.Events().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]DTO, 0, len(events))
	for _, e := range events {
		out = append(out, toDTO(e))
	}
	return out, nil
}

func (h *Handlers) Details(ctx context.Context, _ entity.Actor, q DetailsQuery) (DTO, error) {
	e, err := h.Store.Events().Get(ctx, q.ID)
	if err != nil {
		return DTO{}, fmt.Errorf("get event: %w", err)
	}
	if e == nil {
		return DTO{}, entity.NewNotFound("Event", q.ID)
	}
	return toDTO(e), nil
}
