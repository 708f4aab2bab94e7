package user

import (
	"context"
	"errors"
	"fmt"

	"sk-api/internal/domain/entity"
	"sk-api/internal/mediator"
	"sk-api/internal/observability/metrics"
	"sk-api/internal/repository"
	"sk-api/internal/service/auth"
	"sk-api/internal/validation"
)

// Handlers implements the account requests.
type Handlers struct {
	Store    repository.Store
	Identity *auth.IdentityService
	Tokens   *auth.TokenIssuer
}

func Register(m *mediator.Mediator, h *Handlers) {
	mediator.Register[RegisterCommand, DTO](m, h.Register, h.registerRules())
	mediator.Register[LoginQuery, DTO](m, h.Login, loginRules())
	mediator.Register[CurrentQuery, DTO](m, h.Current, nil)
	mediator.Register[DeleteCommand, mediator.None](m, h.Delete, nil)
}

// loginRules treat whitespace-only credentials as missing so they never reach
// Authenticate.
func loginRules() validation.Set[LoginQuery] {
	return validation.Set[LoginQuery]{
		validation.Required("email", func(q LoginQuery) string { return q.Email }),
		validation.Required("password", func(q LoginQuery) string { return q.Password }),
	}
}

func (h *Handlers) registerRules() validation.Set[RegisterCommand] {
	return validation.Set[RegisterCommand]{
		validation.Struct[RegisterCommand](),
		validation.Email("email", func(c RegisterCommand) string { return c.Email }),
		validation.Must("email", "Email is already in use.", func(ctx context.Context, c RegisterCommand) (bool, error) {
			if c.Email == "" {
				return true, nil
			}
			u, err := h.Store.Users().GetByEmail(ctx, c.Email)
			return u == nil, err
		}),
		validation.Must("username", "Username is already in use.", func(ctx context.Context, c RegisterCommand) (bool, error) {
			if c.Username == "" {
				return true, nil
			}
			u, err := h.Store.Users().GetByUsername(ctx, c.Username)
			return u == nil, err
		}),
	}
}

func (h *Handlers) Register(ctx context.Context, _ entity.Actor, cmd RegisterCommand) (DTO, error) {
	u := &entity.AppUser{Username: cmd.Username, Email: cmd.Email, DisplayName: cmd.Username}
	err := h.Identity.CreateUser(ctx, u, cmd.Password)
	if errors.Is(err, auth.ErrDuplicateUser) {
		// lost a race with a concurrent registration
		return DTO{}, entity.ValidationErrors{{Field: "email", Message: "Email or username is already in use."}}
	}
	if err != nil {
		return DTO{}, fmt.Errorf("register user: %w", err)
	}
	metrics.RecordUserRegistered()
	return h.withToken(u)
}

func (h *Handlers) Login(ctx context.Context, _ entity.Actor, q LoginQuery) (DTO, error) {
	u, err := h.Identity.Authenticate(ctx, q.Email, q.Password)
	if errors.Is(err, entity.ErrAuthenticationFailed) {
		metrics.RecordLogin(false)
		return DTO{}, err
	}
	if err != nil {
		return DTO{}, fmt.Errorf("login: %w", err)
	}
	metrics.RecordLogin(true)
	return h.withToken(u)
}

func (h *Handlers) Current(ctx context.Context, actor entity.Actor, _ CurrentQuery) (DTO, error) {
	u, err := h.acting(ctx, actor)
	if err != nil {
		return DTO{}, err
	}
	return h.withToken(u)
}

func (h *Handlers) Delete(ctx context.Context, actor entity.Actor, _ DeleteCommand) (mediator.None, error) {
	u, err := h.acting(ctx, actor)
	if err != nil {
		return mediator.None{}, err
	}
	if err := h.Identity.DeleteUser(ctx, u.ID); err != nil {
		return mediator.None{}, fmt.Errorf("delete user: %w", err)
	}
	return mediator.None{}, nil
}

// acting resolves the actor to its account. A valid token for a removed
// account is an authentication failure, not a missing resource.
func (h *Handlers) acting(ctx context.Context, actor entity.Actor) (*entity.AppUser, error) {
	if actor.Anonymous() {
		return nil, entity.ErrAuthenticationFailed
	}
	u, err := h.Identity.UserByUsername(ctx, actor.Username)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrAuthenticationFailed
	}
	return u, err
}

func (h *Handlers) withToken(u *entity.AppUser) (DTO, error) {
	token, err := h.Tokens.Issue(u.Username)
	if err != nil {
		return DTO{}, fmt.Errorf("issue token: %w", err)
	}
	return DTO{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Token:       token,
		Image:       u.Image,
	}, nil
}
