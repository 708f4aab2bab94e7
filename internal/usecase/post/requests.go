// Package post holds the event post commands and queries.
package post

import "github.com/google/uuid"

type CreateCommand struct {
	EventID uuid.UUID `json:"eventId" swaggertype:"string" format:"uuid"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

func (CreateCommand) Kind() string { return "post.create" }

type EditCommand struct {
	ID      uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

func (EditCommand) Kind() string { return "post.edit" }

type DeleteCommand struct {
	ID uuid.UUID
}

func (DeleteCommand) Kind() string { return "post.delete" }

// PinCommand and UnpinCommand are idempotent.
type PinCommand struct {
	ID uuid.UUID
}

func (PinCommand) Kind() string { return "post.pin" }

type UnpinCommand struct {
	ID uuid.UUID
}

func (UnpinCommand) Kind() string { return "post.unpin" }

// ListQuery lists posts, newest first, optionally of one event.
type ListQuery struct {
	EventID *uuid.UUID
}

func (ListQuery) Kind() string { return "post.list" }

type DetailsQuery struct {
	ID uuid.UUID
}

func (DetailsQuery) Kind() string { return "post.details" }
