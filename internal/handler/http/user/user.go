// Package user exposes registration, login and the current-user endpoints.
package user

import (
	"net/http"

	"sk-api/internal/handler/http/endpoint"
	"sk-api/internal/mediator"
	userUC "sk-api/internal/usecase/user"
)

// Register mounts the account routes. limit guards the anonymous credential
// endpoints; authz guards /users/me.
func Register(mux *http.ServeMux, m *mediator.Mediator, authz, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /users/register", limit(register(m)))
	mux.Handle("POST /users/login", limit(login(m)))
	mux.Handle("GET /users/me", authz(current(m)))
	mux.Handle("DELETE /users/me", authz(remove(m)))
}

// register godoc
// @Summary      Register
// @Description  Creates an account and returns it with an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        account body userUC.RegisterCommand true "Account"
// @Success      200 {object} userUC.DTO
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      429 {object} map[string]string
// @Router       /users/register [post]
func register(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[userUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		var cmd userUC.RegisterCommand
		if err := endpoint.Decode(r, &cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}

// login godoc
// @Summary      Login
// @Description  Exchanges email and password for an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body userUC.LoginQuery true "Credentials"
// @Success      200 {object} userUC.DTO
// @Failure      400 {object} map[string]any "Validation errors by field"
// @Failure      401 {object} map[string]string
// @Failure      429 {object} map[string]string
// @Router       /users/login [post]
func login(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[userUC.DTO](m, http.StatusOK, func(r *http.Request) (mediator.Request, error) {
		var q userUC.LoginQuery
		if err := endpoint.Decode(r, &q); err != nil {
			return nil, err
		}
		return q, nil
	})
}

// current godoc
// @Summary      Current user
// @Description  Profile of the token's user with a fresh token
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} userUC.DTO
// @Failure      401 {object} map[string]string
// @Router       /users/me [get]
func current(m *mediator.Mediator) http.Handler {
	return endpoint.JSON[userUC.DTO](m, http.StatusOK, func(*http.Request) (mediator.Request, error) {
		return userUC.CurrentQuery{}, nil
	})
}

// remove godoc
// @Summary      Delete account
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} map[string]string
// @Router       /users/me [delete]
func remove(m *mediator.Mediator) http.Handler {
	return endpoint.NoContent(m, func(*http.Request) (mediator.Request, error) {
		return userUC.DeleteCommand{}, nil
	})
}
