package metrics

import (
	"database/sql"
	"errors"
	"time"

	"sk-api/internal/domain/entity"
)

// Outcome labels used by DispatchTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeValidation      = "validation_error"
	OutcomeNotFound        = "not_found"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeError           = "error"
)

// Outcome classifies err into one of the dispatch outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, entity.ErrValidationFailed):
		return OutcomeValidation
	case errors.Is(err, entity.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, entity.ErrAuthenticationFailed):
		return OutcomeUnauthenticated
	default:
		return OutcomeError
	}
}

// RecordDispatch records one mediator dispatch.
func RecordDispatch(kind string, err error, duration time.Duration) {
	DispatchTotal.WithLabelValues(kind, Outcome(err)).Inc()
	DispatchDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordUserRegistered records a successful registration.
func RecordUserRegistered() {
	UsersRegisteredTotal.Inc()
}

// RecordLogin records the result of a login attempt.
func RecordLogin(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}

// RecordDBStats copies connection pool statistics into the pool gauges.
func RecordDBStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}
