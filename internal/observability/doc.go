// Package observability groups the logging, metrics and tracing helpers.
//
// Subpackages:
//   - logging: slog construction and per-request loggers carried in the context
//   - metrics: Prometheus business and database pool metrics
//   - tracing: OpenTelemetry provider setup and the HTTP span middleware
//
// Example usage:
//
//	logger := logging.New(os.Stdout, logging.Options{Level: "info"})
//	shutdown := tracing.Setup("sk-api", 1)
//	defer shutdown(ctx)
//
//	metrics.RecordLogin(true)
package observability
