package post

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/repository"
	"sk-api/internal/validation"
)

const maxTitle = 255

func createRules(store repository.Store) validation.Set[CreateCommand] {
	return validation.Set[CreateCommand]{
		validation.RequiredUUID("eventId", func(c CreateCommand) uuid.UUID { return c.EventID }),
		validation.Must("eventId", "Event does not exist.", func(ctx context.Context, c CreateCommand) (bool, error) {
			if c.EventID == uuid.Nil {
				return true, nil
			}
			return store.Events().Exists(ctx, c.EventID)
		}),
		validation.Required("title", func(c CreateCommand) string { return c.Title }),
		validation.MaxLength("title", maxTitle, func(c CreateCommand) string { return c.Title }),
		validation.Required("content", func(c CreateCommand) string { return c.Content }),
	}
}

func editRules() validation.Set[EditCommand] {
	return validation.Set[EditCommand]{
		validation.Required("title", func(c EditCommand) string { return c.Title }),
		validation.MaxLength("title", maxTitle, func(c EditCommand) string { return c.Title }),
		validation.Required("content", func(c EditCommand) string { return c.Content }),
	}
}
