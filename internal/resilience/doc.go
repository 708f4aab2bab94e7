// Package resilience groups the fault tolerance helpers used around the
// database:
//
//   - circuitbreaker guards every unit of work so a failing database is not
//     hammered by each incoming request
//   - retry waits for the database with exponential backoff at startup
//
// Usage:
//
//	cb := circuitbreaker.New(circuitbreaker.DBConfig())
//	err := cb.Run(func() error { return store.Atomic(ctx, fn) })
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return sqlDB.PingContext(ctx)
//	})
package resilience
