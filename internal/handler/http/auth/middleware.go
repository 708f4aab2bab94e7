// Package auth authenticates HTTP requests with bearer tokens.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sk-api/internal/domain/entity"
	"sk-api/internal/handler/http/respond"
	"sk-api/internal/observability/logging"
)

// Verifier resolves a bearer token to the username it was issued for.
// auth.TokenIssuer from the service layer satisfies it.
type Verifier interface {
	Verify(token string) (string, error)
}

type ctxKey struct{}

// ActorFrom returns the authenticated actor, or the anonymous actor when the
// request did not pass through Authz.
func ActorFrom(ctx context.Context) entity.Actor {
	a, _ := ctx.Value(ctxKey{}).(entity.Actor)
	return a
}

// WithActor stores actor in ctx.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// Authz returns middleware that rejects requests without a valid bearer token
// with 401 and stores the token's actor in the request context otherwise.
func Authz(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			username, err := authenticate(v, r.Header.Get("Authorization"))
			recordAuthDuration(time.Since(start))
			if err != nil {
				recordAuthRequest(resultFailure)
				logging.FromContext(r.Context()).Debug("bearer token rejected",
					"path", r.URL.Path,
					"error", respond.SanitizeError(err))
				respond.Failure(r.Context(), w, entity.ErrAuthenticationFailed)
				return
			}
			recordAuthRequest(resultSuccess)
			ctx := WithActor(r.Context(), entity.Actor{Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(v Verifier, header string) (string, error) {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errMissingToken
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", errMissingToken
	}
	return v.Verify(token)
}
