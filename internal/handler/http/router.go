package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"sk-api/internal/handler/http/article"
	"sk-api/internal/handler/http/auth"
	"sk-api/internal/handler/http/event"
	"sk-api/internal/handler/http/post"
	"sk-api/internal/handler/http/requestid"
	"sk-api/internal/handler/http/testvalue"
	"sk-api/internal/handler/http/user"
	"sk-api/internal/mediator"
	"sk-api/internal/observability/tracing"
	"sk-api/internal/resilience/circuitbreaker"
)

// RouterConfig is everything the route table needs.
type RouterConfig struct {
	Mediator *mediator.Mediator
	Tokens   auth.Verifier
	Logger   *slog.Logger

	DB      *sql.DB
	Breaker *circuitbreaker.CircuitBreaker
	Version string

	// LoginPerSecond and LoginBurst size the per-IP limiter on register/login.
	LoginPerSecond float64
	LoginBurst     int
	MaxBodyBytes   int64
}

// NewRouter builds the route table and wraps it in the middleware chain
// request id -> metrics -> tracing -> logging -> recover -> body limit.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	authz := auth.Authz(cfg.Tokens)
	limiter := NewRateLimiter(cfg.LoginPerSecond, cfg.LoginBurst)

	article.Register(mux, cfg.Mediator, authz)
	post.Register(mux, cfg.Mediator, authz)
	event.Register(mux, cfg.Mediator)
	testvalue.Register(mux, cfg.Mediator, authz)
	user.Register(mux, cfg.Mediator, authz, limiter.Limit)

	mux.Handle("GET /health", &HealthHandler{DB: cfg.DB, Breaker: cfg.Breaker, Version: cfg.Version})
	mux.Handle("GET /ready", &ReadyHandler{DB: cfg.DB})
	mux.Handle("GET /live", LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Chain(mux,
		requestid.Middleware,
		Metrics,
		tracing.Middleware,
		Logging(logger),
		Recover(),
		LimitRequestBody(cfg.MaxBodyBytes),
	)
}
