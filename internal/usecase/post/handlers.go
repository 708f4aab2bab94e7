package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
)

// Handlers implements the post requests.
type Handlers struct {
	Store repository.Store
	Now   func() time.Time
}

// Register wires every post request with its rule set.
func Register(m *mediator.Mediator, h *Handlers) {
	mediator.Register[CreateCommand, uuid.UUID](m, h.Create, createRules(h.Store))
	mediator.Register[EditCommand, mediator.None](m, h.Edit, editRules())
	mediator.Register[DeleteCommand, mediator.None](m, h.Delete, nil)
	mediator.Register[PinCommand, mediator.None](m, h.Pin, nil)
	mediator.Register[UnpinCommand, mediator.None](m, h.Unpin, nil)
	mediator.Register[ListQuery, []DTO](m, h.List, nil)
	mediator.Register[DetailsQuery, DTO](m, h.Details, nil)
}

func (h *Handlers) Create(ctx context.Context, actor entity.Actor, cmd CreateCommand) (uuid.UUID, error) {
	p := &entity.Post{
		ID:      uuid.New(),
		EventID: cmd.EventID,
		Title:   cmd.Title,
		Content: cmd.Content,
	}
	p.StampCreated(actor, h.Now())

	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.Posts().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create post: %w", err)
	}
	return p.ID, nil
}

// modify loads post id, applies change and saves it with a fresh modified stamp.
func (h *Handlers) modify(ctx context.Context, actor entity.Actor, id uuid.UUID, change func(*entity.Post)) error {
	return h.Store.Atomic(ctx, func(tx repository.Collections) error {
		p, err := tx.Posts().Get(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return entity.NewNotFound("Post", id)
		}
		change(p)
		p.StampModified(actor, h.Now())
		return tx.Posts().Update(ctx, p)
	})
}

func (h *Handlers) Edit(ctx context.Context, actor entity.Actor, cmd EditCommand) (mediator.None, error) {
	err := h.modify(ctx, actor, cmd.ID, func(p *entity.Post) {
		p.Title = cmd.Title
		p.Content = cmd.Content
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("edit post: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) Pin(ctx context.Context, actor entity.Actor, cmd PinCommand) (mediator.None, error) {
	if err := h.modify(ctx, actor, cmd.ID, func(p *entity.Post) { p.Pinned = true }); err != nil {
		return mediator.None{}, fmt.Errorf("pin post: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) Unpin(ctx context.Context, actor entity.Actor, cmd UnpinCommand) (mediator.None, error) {
	if err := h.modify(ctx, actor, cmd.ID, func(p *entity.Post) { p.Pinned = false }); err != nil {
		return mediator.None{}, fmt.Errorf("unpin post: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) Delete(ctx context.Context, _ entity.Actor, cmd DeleteCommand) (mediator.None, error) {
	err := h.Store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.Posts().Delete(ctx, cmd.ID)
	})
	if err != nil {
		return mediator.None{}, fmt.Errorf("delete post: %w", err)
	}
	return mediator.None{}, nil
}

func (h *Handlers) List(ctx context.Context, _ entity.Actor, q ListQuery) ([]DTO, error) {
	posts, err := h.Store.Posts().List(ctx, repository.PostFilter{EventID: q.EventID})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	out := make([]DTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toDTO(p))
	}
	return out, nil
}

func (h *Handlers) Details(ctx context.Context, _ entity.Actor, q DetailsQuery) (DTO, error) {
	p, err := h.Store.Posts().Get(ctx, q.ID)
	if err != nil {
		return DTO{}, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return DTO{}, entity.NewNotFound("Post", q.ID)
	}
	return toDTO(p), nil
}
