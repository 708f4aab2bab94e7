// Package logging provides structured logging utilities with context propagation.
//
// Loggers are log/slog loggers with a JSON handler in production and a text
// handler for local development. ForRequest decorates a logger with the request
// id and the active trace id so log lines can be joined with traces.
//
//	logger := logging.New(os.Stdout, logging.Options{Level: "debug"})
//	slog.SetDefault(logger)
//
//	logging.ForRequest(ctx, logger).Info("article created", slog.String("id", id.String()))
package logging
