// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the non-HTTP application metrics:
//   - Mediator dispatch metrics (count by kind and outcome, latency)
//   - Account metrics (registrations, login attempts)
//   - Database connection pool gauges
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	out, err := handle(ctx, req)
//	metrics.RecordDispatch(req.Kind(), err, time.Since(start))
package metrics
