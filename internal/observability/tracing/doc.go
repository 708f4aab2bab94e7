// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs an SDK tracer provider with a ratio sampler and the W3C trace
// context propagator. Middleware opens a server span per HTTP request and
// StartSpan is used for internal spans such as mediator dispatch.
//
//	shutdown := tracing.Setup("sk-api", 1.0)
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "mediator article.create")
//	defer span.End()
package tracing
