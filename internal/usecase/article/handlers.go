package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
)

// Handlers implements the article requests.
type Handlers struct {
	Store repository.Store
	Now   func() time.Time
}

// Register wires every article request with its rule set.
func Register(m *mediator.Mediator, h *Handlers) {
	mediator.Register[CreateCommand, uuid.UUID](m, h.Create, createRules(h.Store))
	mediator.Register[EditCommand, mediator.None](m, h.Edit, editRules())
	mediator.Register[DeleteCommand, mediator.None](m, h.Delete, nil)
	mediator.Register[ListQuery, []DTO](m, h.List, nil)
	mediator.Register[DetailsQuery, DTO](m, h.Details, nil)
}

func (h *Handlers) Create(ctx context.Context, actor entity.Actor, cmd CreateCommand) (uuid.UUID, error) {
	a := &entity.Article{
		ID:       cmd.ID,
		Title:    cmd.Title,
		Abstract: cmd.Abstract,
		Image:    cmd.Image,
		Content:  cmd.Content,
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.StampCreated(actor, h.Now())

	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.Articles().Create(ctx, a)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// a concurrent create with the same client id won
		return uuid.Nil, entity.ValidationErrors{{Field: "id", Message: msgDuplicateID}}
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("create article: %w", err)
	}
	return a.ID, nil
}

func (h *Handlers) Edit(ctx context.Context, actor entity.Actor, cmd EditCommand) (mediator.None, error) {
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		a, err := tx.Articles().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if a == nil {
			return entity.NewNotFound("Article", cmd.ID)
		}
		a.Title = cmd.Title
		a.Abstract = cmd.Abstract
		a.Image = cmd.Image
		a.Content = cmd.Content
		a.StampModified(actor, h.Now())
		return tx.Articles().Update(ctx, a)
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("edit article: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) Delete(ctx context.Context, _ entity.Actor, cmd DeleteCommand) (mediator.None, error) {
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.Articles().Delete(ctx, cmd.ID)
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("delete article: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) List(ctx context.Context, _ entity.Actor, _ ListQuery) ([]DTO, error) {
	articles, err := h.Store.Articles().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out, nil
}

func (h *Handlers) Details(ctx context.Context, _ entity.Actor, q DetailsQuery) (DTO, error) {
	a, err := h.Store.Articles().Get(ctx, q.ID)
	if err != nil {
		return DTO{}, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return DTO{}, entity.NewNotFound("Article", q.ID)
	}
	return toDTO(a), nil
}
