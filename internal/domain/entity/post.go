package entity

import "github.com/google/uuid"

// Post is a short message attached to an event. Pinned posts are surfaced first
// by clients; the store keeps no ordering beyond the flag itself.
type Post struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title   string    `gorm:"size:255;not null"`
	Content string    `gorm:"type:text;not null"`
	Pinned  bool      `gorm:"not null"`
	Audit   `gorm:"embedded"`
}

func (Post) TableName() string { return "posts" }
