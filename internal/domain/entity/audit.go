package entity

import "time"

// Actor is the identity a request runs as. The zero value is anonymous.
type Actor struct {
	Username string
}

// Anonymous reports whether no user is attached to the request.
func (a Actor) Anonymous() bool { return a.Username == "" }

// Audit holds the creator and last-modifier stamps of a mutable record.
// Timestamps are always stored in UTC.
type Audit struct {
	CreatedBy      string `gorm:"size:255;not null"`
	Created        time.Time
	LastModifiedBy *string `gorm:"size:255"`
	LastModified   *time.Time
}

// StampCreated records who created the record and when.
func (a *Audit) StampCreated(actor Actor, now time.Time) {
	a.CreatedBy = actor.Username
	a.Created = now.UTC()
}

// StampModified records who last changed the record and when.
// The creation stamp is left untouched.
func (a *Audit) StampModified(actor Actor, now time.Time) {
	by := actor.Username
	at := now.UTC()
	a.LastModifiedBy = &by
	a.LastModified = &at
}
