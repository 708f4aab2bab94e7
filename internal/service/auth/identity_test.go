package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sk-api/internal/domain/entity"
	"sk-api/internal/repository"
	"sk-api/internal/repository/repotest"
)

func newIdentity(t *testing.T) (*IdentityService, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	svc := NewIdentityService(store, bcrypt.MinCost)
	svc.Now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, store
}

func TestIdentityService_CreateUser(t *testing.T) {
	svc, _ := newIdentity(t)
	ctx := context.Background()

	u := &entity.AppUser{Username: "scott", Email: "scott@localhost", DisplayName: "Scott"}
	require.NoError(t, svc.CreateUser(ctx, u, "Pa$$w0rd"))

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.NotEqual(t, "Pa$$w0rd", u.PasswordHash)
	assert.Equal(t, svc.Now(), u.Created)

	byName, err := svc.UserByUsername(ctx, "SCOTT")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.True(t, svc.CheckPassword(byName, "Pa$$w0rd"))
	assert.False(t, svc.CheckPassword(byName, "wrong"))
}

func TestIdentityService_CreateUser_Duplicate(t *testing.T) {
	svc, _ := newIdentity(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, &entity.AppUser{Username: "scott", Email: "scott@localhost"}, "Pa$$w0rd"))

	tests := []struct {
		name string
		user *entity.AppUser
	}{
		{"same username", &entity.AppUser{Username: "Scott", Email: "other@localhost"}},
		{"same email", &entity.AppUser{Username: "other", Email: "SCOTT@localhost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateUser(ctx, tt.user, "Pa$$w0rd")
			assert.ErrorIs(t, err, ErrDuplicateUser)
			assert.ErrorIs(t, err, repository.ErrDuplicate)
		})
	}
}

func TestIdentityService_UserByEmail_NotFound(t *testing.T) {
	svc, _ := newIdentity(t)

	_, err := svc.UserByEmail(context.Background(), "nobody@localhost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestIdentityService_DeleteUser_RemovesAttendance(t *testing.T) {
	svc, store := newIdentity(t)
	ctx := context.Background()
	u := &entity.AppUser{Username: "scott", Email: "scott@localhost"}
	require.NoError(t, svc.CreateUser(ctx, u, "Pa$$w0rd"))
	require.NoError(t, store.Atomic(ctx, func(tx repository.Collections) error {
		return tx.UserEvents().Create(ctx, &entity.UserEvent{UserID: u.ID, EventID: uuid.New(), IsHost: true})
	}))

	require.NoError(t, svc.DeleteUser(ctx, u.ID))

	_, err := svc.UserByUsername(ctx, "scott")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	attendance, err := store.UserEvents().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, attendance)
}

func TestIdentityService_DeleteUser_Unknown(t *testing.T) {
	svc, _ := newIdentity(t)

	err := svc.DeleteUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestIdentityService_Authenticate(t *testing.T) {
	svc, _ := newIdentity(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateUser(ctx, &entity.AppUser{Username: "scott", Email: "scott@localhost"}, "Pa$$w0rd"))

	u, err := svc.Authenticate(ctx, "scott@localhost", "Pa$$w0rd")
	require.NoError(t, err)
	assert.Equal(t, "scott", u.Username)

	_, err = svc.Authenticate(ctx, "scott@localhost", "wrong")
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)

	_, err = svc.Authenticate(ctx, "nobody@localhost", "Pa$$w0rd")
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)
}

func TestIdentityService_StoreFailure(t *testing.T) {
	svc, store := newIdentity(t)
	down := errors.New("db down")
	store.FailWith(down)

	_, err := svc.Authenticate(context.Background(), "scott@localhost", "x")

	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, entity.ErrAuthenticationFailed)
}
