package observability

import (
	"log/slog"
	"time"
)

// Timer measures one operation and reports it to a metrics collector and,
// optionally, a logger. The zero collector case is a no-op so call sites can
// time unconditionally.
type Timer struct {
	operation string
	start     time.Time
	metrics   Metrics
	logger    *slog.Logger
}

// StartTimer begins timing the named operation.
func StartTimer(operation string) *Timer {
	return &Timer{operation: operation, start: time.Now()}
}

// WithMetrics attaches a metrics collector recorded on stop.
func (t *Timer) WithMetrics(m Metrics) *Timer {
	t.metrics = m
	return t
}

// WithLogger attaches a logger that reports the outcome on stop.
func (t *Timer) WithLogger(l *slog.Logger) *Timer {
	t.logger = l
	return t
}

// Elapsed returns the time since the timer started without recording.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop records a successful operation and returns its duration.
func (t *Timer) Stop() time.Duration {
	return t.StopWithError(nil)
}

// StopWithError records the operation, counting an error when err is
// non-nil, and returns the duration.
func (t *Timer) StopWithError(err error) time.Duration {
	duration := time.Since(t.start)

	if t.logger != nil {
		if err != nil {
			t.logger.Error("operation failed",
				"operation", t.operation,
				"duration_ms", duration.Milliseconds(),
				"error", err.Error(),
			)
		} else {
			t.logger.Info("operation completed",
				"operation", t.operation,
				"duration_ms", duration.Milliseconds(),
			)
		}
	}

	if t.metrics != nil {
		tag := T("operation", t.operation)
		t.metrics.Timing(MetricOperationDuration, duration, tag)
		t.metrics.Counter(MetricOperationTotal, 1, tag)
		if err != nil {
			t.metrics.Counter(MetricOperationErrors, 1, tag)
		}
	}

	return duration
}
