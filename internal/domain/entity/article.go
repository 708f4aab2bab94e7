// Package entity defines the domain records persisted by the application together
// with their storage mapping, audit stamps and the error taxonomy shared by every layer.
package entity

import "github.com/google/uuid"

// Article is a long-form piece of content with a title, an abstract and a body.
type Article struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title    string    `gorm:"size:255;not null"`
	Abstract string    `gorm:"type:text;not null"`
	Image    *string   `gorm:"size:2048"`
	Content  string    `gorm:"type:text;not null"`
	Audit    `gorm:"embedded"`
}

// TableName maps Article onto the articles table.
func (Article) TableName() string { return "articles" }
