package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppUser is a registered account. PasswordHash is a bcrypt digest and must
// never leave the service layer. Username and email are unique ignoring case,
// matching the case-insensitive lookups.
type AppUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:64;not null;uniqueIndex:idx_users_username_lower,expression:lower(username)"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:idx_users_email_lower,expression:lower(email)"`
	DisplayName  string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255;not null"`
	Image        *string   `gorm:"size:2048"`
	Created      time.Time `gorm:"not null"`
}

func (AppUser) TableName() string { return "users" }

// Photo is an uploaded image owned by a user.
type Photo struct {
	ID     string    `gorm:"size:255;primaryKey"`
	URL    string    `gorm:"size:2048;not null"`
	IsMain bool      `gorm:"not null"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Photo) TableName() string { return "photos" }
