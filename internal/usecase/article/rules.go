package article

import (
	"context"

	"github.com/google/uuid"

	"sk-api/internal/domain/entity"
	"sk-api/internal/repository"
	"sk-api/internal/validation"
)

const (
	maxTitle       = 255
	msgDuplicateID = "Article with this id already exists."
)

func createRules(store repository.Store) validation.Set[CreateCommand] {
	return validation.Set[CreateCommand]{
		validation.Must("id", msgDuplicateID,
			func(ctx context.Context, c CreateCommand) (bool, error) {
				if c.ID == uuid.Nil {
					return true, nil
				}
				exists, err := store.Articles().Exists(ctx, c.ID)
				return !exists, err
			}),
		validation.Required("title", func(c CreateCommand) string { return c.Title }),
		validation.MaxLength("title", maxTitle, func(c CreateCommand) string { return c.Title }),
		validation.Required("abstract", func(c CreateCommand) string { return c.Abstract }),
		validation.Optional(func(c CreateCommand) *string { return c.Image }, entity.ValidateImageURL),
		validation.Required("content", func(c CreateCommand) string { return c.Content }),
	}
}

// editRules check the payload only; a missing article is reported by the
// handler once the payload passed.
func editRules() validation.Set[EditCommand] {
	return validation.Set[EditCommand]{
		validation.Required("title", func(c EditCommand) string { return c.Title }),
		validation.MaxLength("title", maxTitle, func(c EditCommand) string { return c.Title }),
		validation.Required("abstract", func(c EditCommand) string { return c.Abstract }),
		validation.Optional(func(c EditCommand) *string { return c.Image }, entity.ValidateImageURL),
		validation.Required("content", func(c EditCommand) string { return c.Content }),
	}
}
