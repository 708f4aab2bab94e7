// Package article holds the article commands and queries.
package article

import "github.com/google/uuid"

// CreateCommand creates an article. A nil ID asks the handler to generate one.
type CreateCommand struct {
	ID       uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title    string    `json:"title"`
	Abstract string    `json:"abstract"`
	Image    *string   `json:"image"`
	Content  string    `json:"content"`
}

func (CreateCommand) Kind() string { return "article.create" }

// EditCommand overwrites every editable field of an article.
type EditCommand struct {
	ID       uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title    string    `json:"title"`
	Abstract string    `json:"abstract"`
	Image    *string   `json:"image"`
	Content  string    `json:"content"`
}

func (EditCommand) Kind() string { return "article.edit" }

type DeleteCommand struct {
	ID uuid.UUID
}

func (DeleteCommand) Kind() string { return "article.delete" }

type ListQuery struct{}

func (ListQuery) Kind() string { return "article.list" }

type DetailsQuery struct {
	ID uuid.UUID
}

func (DetailsQuery) Kind() string { return "article.details" }
