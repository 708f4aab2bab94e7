// Package testvalue holds the commands and queries of the TestValue exemplar entity.
package testvalue

import (
	"context"
	"fmt"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
	"sk-api/internal/validation"
)

type CreateCommand struct {
	Name string `json:"name"`
}

func (CreateCommand) Kind() string { return "testvalue.create" }

type EditCommand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (EditCommand) Kind() string { return "testvalue.edit" }

type DeleteCommand struct {
	ID int64
}

func (DeleteCommand) Kind() string { return "testvalue.delete" }

// ListQuery lists every value ordered by id.
type ListQuery struct{}

func (ListQuery) Kind() string { return "testvalue.list" }

type DetailsQuery struct {
	ID int64
}

func (DetailsQuery) Kind() string { return "testvalue.details" }

type DTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const maxName = 255

var createRules = validation.Set[CreateCommand]{
	validation.Required("name", func(c CreateCommand) string { return c.Name }),
	validation.MaxLength("name", maxName, func(c CreateCommand) string { return c.Name }),
}

var editRules = validation.Set[EditCommand]{
	validation.Required("name", func(c EditCommand) string { return c.Name }),
	validation.MaxLength("name", maxName, func(c EditCommand) string { return c.Name }),
}

type Handlers struct {
	Store repository.Store
}

func Register(m *mediator.Mediator, h *Handlers) {
	mediator.Register[CreateCommand, int64](m, h.Create, createRules)
	mediator.Register[EditCommand, mediator.None](m, h.Edit, editRules)
	mediator.Register[DeleteCommand, mediator.None](m, h.Delete, nil)
	mediator.Register[ListQuery, []DTO](m, h.List, nil)
	mediator.Register[DetailsQuery, DTO](m, h.Details, nil)
}

func (h *Handlers) Create(ctx context.Context, _ entity.Actor, cmd CreateCommand) (int64, error) {
	tv := &entity.TestValue{Name: cmd.Name}
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.TestValues().Create(ctx, tv)
	})
	if err != nil {
		return 0, fmt.Errorf("create test value: %w", err)
	}
	return tv.ID, nil
}

func (h *Handlers) Edit(ctx context.Context, _ entity.Actor, cmd EditCommand) (mediator.None, error) {
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		tv, err := tx.TestValues().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if tv == nil {
			return entity.NewNotFound("TestValue", cmd.ID)
		}
		tv.Name = cmd.Name
		return tx.TestValues().Update(ctx, tv)
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("edit test value: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) Delete(ctx context.Context, _ entity.Actor, cmd DeleteCommand) (mediator.None, error) {
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.TestValues().Delete(ctx, cmd.ID)
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("delete test value: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) List(ctx context.Context, _ entity.Actor, _ ListQuery) ([]DTO, error) {
	values, err := h.Store.TestValues().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test values: %w", err)
	}
	out := make([]DTO, 0, len(values))
	for _, tv := range values {
		out = append(out, DTO{ID: tv.ID, Name: tv.Name})
	}
	return out, nil
}

func (h *Handlers) Details(ctx context.Context, _ entity.Actor, q DetailsQuery) (DTO, error) {
	tv, err := h.Store.TestValues().Get(ctx, q.ID)
	if err != nil {
		return DTO{}, fmt.Errorf("get test value: %w", err)
	}
	if tv == nil {
		return DTO{}, entity.NewNotFound("TestValue", q.ID)
	}
	return DTO{ID: tv.ID, Name: tv.Name}, nil
}
