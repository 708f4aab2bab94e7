// Package auth holds account management and token issuing.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sk-api/internal/domain/entity"
	"sk-api/internal/repository"
)

// ErrDuplicateUser is returned by CreateUser when the username or email is
// taken. It matches repository.ErrDuplicate.
var ErrDuplicateUser = fmt.Errorf("username or email already in use: %w", repository.ErrDuplicate)

// IdentityService manages accounts and their credentials.
type IdentityService struct {
	Store repository.Store
	Cost  int
	Now   func() time.Time

	// dummyHash is compared against when the account does not exist, so an
	// unknown email costs as much as a wrong password.
	dummyHash []byte
}

// NewIdentityService hashes passwords with the given bcrypt cost.
func NewIdentityService(store repository.Store, cost int) *IdentityService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("sk-api-dummy-password"), cost)
	if err != nil {
		// only an out-of-range cost gets here
		panic(fmt.Sprintf("auth: bcrypt cost %d: %v", cost, err))
	}
	return &IdentityService{Store: store, Cost: cost, Now: time.Now, dummyHash: dummy}
}

// UserByUsername returns the account or an entity.NotFoundError.
func (s *IdentityService) UserByUsername(ctx context.Context, username string) (*entity.AppUser, error) {
	u, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user by username: %w", err)
	}
	if u == nil {
		return nil, entity.NewNotFound("User", username)
	}
	return u, nil
}

// UserByEmail returns the account or an entity.NotFoundError.
func (s *IdentityService) UserByEmail(ctx context.Context, email string) (*entity.AppUser, error) {
	u, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user by email: %w", err)
	}
	if u == nil {
		return nil, entity.NewNotFound("User", email)
	}
	return u, nil
}

// CreateUser stores user with a bcrypt hash of password. A zero ID is
// replaced by a new one.
func (s *IdentityService) CreateUser(ctx context.Context, user *entity.AppUser, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Created = s.Now().UTC()

	err = s.Store.Atomic(ctx, func(tx repository.Collections) error {
		if taken, err := tx.Users().GetByUsername(ctx, user.Username); err != nil {
			return err
		} else if taken != nil {
			return ErrDuplicateUser
		}
		if taken, err := tx.Users().GetByEmail(ctx, user.Email); err != nil {
			return err
		} else if taken != nil {
			return ErrDuplicateUser
		}
		return tx.Users().Create(ctx, user)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, ErrDuplicateUser) {
		return fmt.Errorf("create user: %w", err)
	}
	return err
}

// DeleteUser removes the account and its event attendance in one unit of work.
func (s *IdentityService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.Store.Atomic(ctx, func(tx repository.Collections) error {
		u, err := tx.Users().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if u == nil {
			return entity.NewNotFound("User", id)
		}
		if _, err := tx.UserEvents().DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return tx.Users().Delete(ctx, id)
	})
}

// CheckPassword reports whether password matches the stored hash.
func (s *IdentityService) CheckPassword(user *entity.AppUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Authenticate resolves email and password to an account. Unknown emails and
// wrong passwords both yield entity.ErrAuthenticationFailed.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*entity.AppUser, error) {
	u, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, entity.ErrAuthenticationFailed
	}
	if !s.CheckPassword(u, password) {
		return nil, entity.ErrAuthenticationFailed
	}
	return u, nil
}
