package repository

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when a unique key is already taken.
// Update and Delete report a missing row with entity.NotFoundError.
var ErrDuplicate = errors.New("duplicate key")

// Collections exposes one repository per entity type.
type Collections interface {
	Articles() ArticleRepository
	Posts() PostRepository
	Events() EventRepository
	UserEvents() UserEventRepository
	Users() UserRepository
	TestValues() TestValueRepository
}

// Store is the persistence entry point. Reads may go through the embedded
// Collections directly; every mutation goes through Atomic.
//
// Atomic runs fn as one unit of work: the collections passed to fn are bound
// to a single transaction that commits when fn returns nil and rolls back
// otherwise. fn must not retain the collections after it returns.
type Store interface {
	Collections
	Atomic(ctx context.Context, fn func(tx Collections) error) error
}
