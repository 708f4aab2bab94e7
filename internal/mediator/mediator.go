// Package mediator routes request objects to their single registered handler.
//
// The routing table is built once at startup with Register and is read-only
// afterwards, so Send is safe for concurrent use. Every dispatch runs the
// request's rule set first; a failing rule set short-circuits the handler.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sk-api/internal/domain/entity"
	"sk-api/internal/observability/logging"
	"sk-api/internal/observability/metrics"
	"sk-api/internal/observability/tracing"
)

// ErrNoHandler is returned by Send for a request kind nobody registered.
var ErrNoHandler = errors.New("mediator: no handler registered")

// Request is implemented by every command and query. Kind must be constant
// for a type and unique across the application.
type Request interface {
	Kind() string
}

// None is the result type of requests that produce no value.
type None = struct{}

// Handler executes one request kind on behalf of actor.
type Handler[R Request, T any] func(ctx context.Context, actor entity.Actor, req R) (T, error)

// Validator checks a request before its handler runs.
// validation.Set satisfies it.
type Validator[R Request] interface {
	Validate(ctx context.Context, req R) error
}

type route struct {
	validate func(ctx context.Context, req Request) error
	handle   func(ctx context.Context, actor entity.Actor, req Request) (any, error)
}

// Mediator is the dispatch table.
type Mediator struct {
	routes map[string]route
	logger *slog.Logger
}

// New returns an empty mediator. A nil logger means slog.Default().
func New(logger *slog.Logger) *Mediator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mediator{routes: make(map[string]route), logger: logger}
}

// Register binds handler and its optional validator to R's kind.
// It panics when the kind is already taken; registration happens at startup
// and a duplicate is a programming error.
func Register[R Request, T any](m *Mediator, handler Handler[R, T], validator Validator[R]) {
	var zero R
	kind := zero.Kind()
	if _, dup := m.routes[kind]; dup {
		panic(fmt.Sprintf("mediator: duplicate handler for %q", kind))
	}

	r := route{
		handle: func(ctx context.Context, actor entity.Actor, req Request) (any, error) {
			return handler(ctx, actor, req.(R))
		},
	}
	if validator != nil {
		r.validate = func(ctx context.Context, req Request) error {
			return validator.Validate(ctx, req.(R))
		}
	}
	m.routes[kind] = r
}

// Kinds lists the registered request kinds.
func (m *Mediator) Kinds() []string {
	kinds := make([]string, 0, len(m.routes))
	for k := range m.routes {
		kinds = append(kinds, k)
	}
	return kinds
}

// Send dispatches req as actor and returns the handler result as T.
func Send[T any](ctx context.Context, m *Mediator, actor entity.Actor, req Request) (T, error) {
	var zero T
	out, err := m.dispatch(ctx, actor, req)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	res, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("mediator: %s returned %T, want %T", req.Kind(), out, zero)
	}
	return res, nil
}

func (m *Mediator) dispatch(ctx context.Context, actor entity.Actor, req Request) (out any, err error) {
	kind := req.Kind()
	r, ok := m.routes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, kind)
	}

	ctx, span := tracing.StartSpan(ctx, "mediator "+kind,
		attribute.String("mediator.kind", kind),
		attribute.Bool("mediator.authenticated", !actor.Anonymous()),
	)
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		metrics.RecordDispatch(kind, err, elapsed)
		outcome := metrics.Outcome(err)
		span.SetAttributes(attribute.String("mediator.outcome", outcome))
		if outcome == metrics.OutcomeError {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		logging.ForRequest(ctx, m.logger).Debug("request dispatched",
			slog.String("kind", kind),
			slog.String("outcome", outcome),
			slog.Duration("duration", elapsed))
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.validate != nil {
		if err := r.validate(ctx, req); err != nil {
			return nil, err
		}
	}
	return r.handle(ctx, actor, req)
}
