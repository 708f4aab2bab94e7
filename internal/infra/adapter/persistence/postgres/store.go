// Package postgres implements the repository ports on PostgreSQL through gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sk-api/internal/repository"
	"sk-api/internal/resilience/circuitbreaker"
)

// Store is the gorm-backed repository.Store.
type Store struct {
	collections
	cb *circuitbreaker.CircuitBreaker
}

var _ repository.Store = (*Store)(nil)

// NewStore binds the repositories to db. cb may be nil, in which case units of
// work run unguarded.
func NewStore(db *gorm.DB, cb *circuitbreaker.CircuitBreaker) *Store {
	return &Store{collections: collections{db: db}, cb: cb}
}

// Atomic runs fn inside one database transaction. The transaction commits
// when fn returns nil and rolls back otherwise, including on panic.
func (s *Store) Atomic(ctx context.Context, fn func(tx repository.Collections) error) error {
	run := func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(collections{db: tx})
		})
	}
	if s.cb == nil {
		return run()
	}
	return s.cb.Run(run)
}

// collections hands out repositories bound to either the pool or a transaction.
type collections struct {
	db *gorm.DB
}

func (c collections) Articles() repository.ArticleRepository     { return &ArticleRepo{db: c.db} }
func (c collections) Posts() repository.PostRepository           { return &PostRepo{db: c.db} }
func (c collections) Events() repository.EventRepository         { return &EventRepo{db: c.db} }
func (c collections) UserEvents() repository.UserEventRepository { return &UserEventRepo{db: c.db} }
func (c collections) Users() repository.UserRepository           { return &UserRepo{db: c.db} }
func (c collections) TestValues() repository.TestValueRepository { return &TestValueRepo{db: c.db} }

// take loads one row into dest and reports whether it was found.
func take(q *gorm.DB, dest any) (bool, error) {
	err := q.Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func createErr(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
