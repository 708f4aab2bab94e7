package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a dated happening that users can attend.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"size:100"`
	City        string    `gorm:"size:100"`
	Venue       string    `gorm:"size:255"`
}

func (Event) TableName() string { return "events" }

// UserEvent records that a user attends an event.
type UserEvent struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsHost     bool      `gorm:"not null"`
	DateJoined time.Time `gorm:"not null"`
}

func (UserEvent) TableName() string { return "user_events" }

// Discussion is a comment thread entry under an event.
type Discussion struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null"`
	Body     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"not null"`
}

func (Discussion) TableName() string { return "discussions" }
