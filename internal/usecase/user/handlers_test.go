package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/repository/repotest"
	"sk-api/internal/service/auth"
	"sk-api/internal/usecase/user"
)

const secret = "k3Jd9sQm2LxV7pWz4RtY8nBc6HfG1aE5"

type fixture struct {
	m      *mediator.Mediator
	store  *repotest.Store
	tokens *auth.TokenIssuer
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := repotest.New()
	tokens := auth.NewTokenIssuer(secret, time.Hour)
	m := mediator.New(nil)
	user.Register(m, &user.Handlers{
		Store:    store,
		Identity: auth.NewIdentityService(store, bcrypt.MinCost),
		Tokens:   tokens,
	})
	return fixture{m: m, store: store, tokens: tokens}
}

func (f fixture) register(t *testing.T, username, email, password string) user.DTO {
	t.Helper()
	dto, err := mediator.Send[user.DTO](context.Background(), f.m, entity.Actor{},
		user.RegisterCommand{Username: username, Email: email, Password: password})
	require.NoError(t, err)
	return dto
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve entity.ValidationErrors
	require.True(t, errors.As(err, &ve), "want ValidationErrors, got %v", err)
	return ve.Fields()
}

func TestRegister_IssuesToken(t *testing.T) {
	f := setup(t)

	dto := f.register(t, "scott", "scott@localhost", "Pa$$w0rd")

	assert.Equal(t, "scott", dto.Username)
	assert.Equal(t, "scott", dto.DisplayName)
	assert.Nil(t, dto.Image)
	sub, err := f.tokens.Verify(dto.Token)
	require.NoError(t, err)
	assert.Equal(t, "scott", sub)
}

func TestRegister_Rules(t *testing.T) {
	f := setup(t)
	f.register(t, "scott", "scott@localhost", "Pa$$w0rd")

	tests := []struct {
		name  string
		cmd   user.RegisterCommand
		field string
	}{
		{"missing username", user.RegisterCommand{Email: "a@b.com", Password: "secret1"}, "username"},
		{"bad username", user.RegisterCommand{Username: "a b", Email: "a@b.com", Password: "secret1"}, "username"},
		{"missing email", user.RegisterCommand{Username: "bob", Password: "secret1"}, "email"},
		{"bad email", user.RegisterCommand{Username: "bob", Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", user.RegisterCommand{Username: "bob", Email: "a@b.com", Password: "ab1"}, "password"},
		{"password without digit", user.RegisterCommand{Username: "bob", Email: "a@b.com", Password: "abcdefg"}, "password"},
		{"email taken", user.RegisterCommand{Username: "bob", Email: "SCOTT@localhost", Password: "secret1"}, "email"},
		{"username taken", user.RegisterCommand{Username: "Scott", Email: "a@b.com", Password: "secret1"}, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mediator.Send[user.DTO](context.Background(), f.m, entity.Actor{}, tt.cmd)
			assert.Contains(t, fieldsOf(t, err), tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	f := setup(t)
	f.register(t, "bob", "bob@test.com", "Pa$$w0rd")
	ctx := context.Background()

	dto, err := mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.LoginQuery{Email: "bob@test.com", Password: "Pa$$w0rd"})
	require.NoError(t, err)
	assert.Equal(t, "bob", dto.Username)
	assert.Nil(t, dto.Image)
	assert.NotEmpty(t, dto.Token)

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.LoginQuery{Email: "bob@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.LoginQuery{Email: "nobody@test.com", Password: "Pa$$w0rd"})
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.LoginQuery{})
	assert.Equal(t, map[string][]string{
		"email":    {"Email is required."},
		"password": {"Password is required."},
	}, fieldsOf(t, err))

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.LoginQuery{Email: "   ", Password: "\t "})
	assert.NotErrorIs(t, err, entity.ErrAuthenticationFailed)
	assert.Equal(t, map[string][]string{
		"email":    {"Email is required."},
		"password": {"Password is required."},
	}, fieldsOf(t, err))
}

func TestCurrent(t *testing.T) {
	f := setup(t)
	f.register(t, "scott", "scott@localhost", "Pa$$w0rd")
	ctx := context.Background()

	dto, err := mediator.Send[user.DTO](ctx, f.m, entity.Actor{Username: "scott"}, user.CurrentQuery{})
	require.NoError(t, err)
	assert.Equal(t, "scott", dto.Username)
	assert.NotEmpty(t, dto.Token)

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{}, user.CurrentQuery{})
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)

	_, err = mediator.Send[user.DTO](ctx, f.m, entity.Actor{Username: "ghost"}, user.CurrentQuery{})
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)
}

func TestDelete_RemovesAccount(t *testing.T) {
	f := setup(t)
	f.register(t, "scott", "scott@localhost", "Pa$$w0rd")
	ctx := context.Background()
	scott := entity.Actor{Username: "scott"}

	_, err := mediator.Send[mediator.None](ctx, f.m, scott, user.DeleteCommand{})
	require.NoError(t, err)

	u, err := f.store.Users().GetByUsername(ctx, "scott")
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = mediator.Send[mediator.None](ctx, f.m, scott, user.DeleteCommand{})
	assert.ErrorIs(t, err, entity.ErrAuthenticationFailed)
}
