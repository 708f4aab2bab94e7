// Package app wires configuration, persistence, use cases and the HTTP
// surface into one runnable server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"sk-api/internal/config"
	hhttp "sk-api/internal/handler/http"
	pg "sk-api/internal/infra/adapter/persistence/postgres"
	"sk-api/internal/infra/db"
	"sk-api/internal/mediator"
	"sk-api/internal/repository"
	"sk-api/internal/resilience/circuitbreaker"
	"sk-api/internal/service/auth"
	"sk-api/internal/usecase/article"
	"sk-api/internal/usecase/event"
	"sk-api/internal/usecase/post"
	"sk-api/internal/usecase/testvalue"
	"sk-api/internal/usecase/user"
)

// App is a fully wired server.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	DB       *sql.DB
	Gorm     *gorm.DB
	Store    repository.Store
	Breaker  *circuitbreaker.CircuitBreaker
	Identity *auth.IdentityService
	Tokens   *auth.TokenIssuer
	Mediator *mediator.Mediator
	Handler  http.Handler
}

// New builds the application on top of an open database. When the config
// asks for it the schema is migrated first.
func New(ctx context.Context, cfg config.Config, sqlDB *sql.DB, logger *slog.Logger) (*App, error) {
	gdb, err := db.NewGorm(sqlDB, logger)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, gdb); err != nil {
			return nil, err
		}
		logger.Info("database schema migrated")
	}

	breaker := circuitbreaker.New(circuitbreaker.DBConfig())
	store := pg.NewStore(gdb, breaker)
	identity := auth.NewIdentityService(store, cfg.Auth.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	m := mediator.New(logger)
	article.Register(m, &article.Handlers{Store: store, Now: time.Now})
	post.Register(m, &post.Handlers{Store: store, Now: time.Now})
	event.Register(m, &event.Handlers{Store: store})
	testvalue.Register(m, &testvalue.Handlers{Store: store})
	user.Register(m, &user.Handlers{Store: store, Identity: identity, Tokens: tokens})

	handler := hhttp.NewRouter(hhttp.RouterConfig{
		Mediator:       m,
		Tokens:         tokens,
		Logger:         logger,
		DB:             sqlDB,
		Breaker:        breaker,
		Version:        cfg.Version,
		LoginPerSecond: cfg.Login.PerSecond,
		LoginBurst:     cfg.Login.Burst,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	})

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       sqlDB,
		Gorm:     gdb,
		Store:    store,
		Breaker:  breaker,
		Identity: identity,
		Tokens:   tokens,
		Mediator: m,
		Handler:  handler,
	}, nil
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests for
// at most the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(a.Config.Port)),
		Handler:           a.Handler,
		ReadHeaderTimeout: a.Config.HTTP.ReadHeaderTimeout,
	}
	return a.serve(ctx, srv, nil)
}

// serve runs srv on ln (or srv.Addr when ln is nil) until ctx ends.
func (a *App) serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("http server listening", slog.String("addr", srv.Addr), slog.String("version", a.Config.Version))
		var err error
		if ln != nil {
			err = srv.Serve(ln)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
