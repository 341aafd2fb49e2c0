package observability

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// HealthStatus is the health state of a component or a whole process.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheckResult is the outcome of one component check.
type HealthCheckResult struct {
	Status    HealthStatus  `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	Timestamp time.Time     `json:"timestamp"`
}

// HealthChecker probes a single dependency.
type HealthChecker func(ctx context.Context) HealthCheckResult

// OverallHealth aggregates every registered check into one report, suitable
// for serving from a health endpoint.
type OverallHealth struct {
	Status    HealthStatus                 `json:"status"`
	Timestamp time.Time                    `json:"timestamp"`
	Checks    map[string]HealthCheckResult `json:"checks"`
}

// ToJSON serializes the report.
func (h OverallHealth) ToJSON() ([]byte, error) {
	return json.Marshal(h)
}

// HealthRegistry holds named checkers for the process's dependencies.
type HealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{checkers: make(map[string]HealthChecker)}
}

// Register adds or replaces the checker for a component.
func (r *HealthRegistry) Register(name string, checker HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// GetOverallHealth runs every registered check and reduces the results:
// any unhealthy component makes the whole report unhealthy, otherwise any
// degraded component makes it degraded.
func (r *HealthRegistry) GetOverallHealth(ctx context.Context) OverallHealth {
	r.mu.RLock()
	checkers := make(map[string]HealthChecker, len(r.checkers))
	for name, checker := range r.checkers {
		checkers[name] = checker
	}
	r.mu.RUnlock()

	overall := OverallHealth{
		Status:    HealthStatusHealthy,
		Timestamp: time.Now(),
		Checks:    make(map[string]HealthCheckResult, len(checkers)),
	}

	for name, checker := range checkers {
		start := time.Now()
		result := checker(ctx)
		result.Duration = time.Since(start)
		result.Timestamp = time.Now()
		overall.Checks[name] = result

		switch result.Status {
		case HealthStatusUnhealthy:
			overall.Status = HealthStatusUnhealthy
		case HealthStatusDegraded:
			if overall.Status == HealthStatusHealthy {
				overall.Status = HealthStatusDegraded
			}
		}
	}

	return overall
}

// DatabaseHealthChecker probes the primary store. A failing database makes
// the process unhealthy: nothing works without it.
func DatabaseHealthChecker(ping func(ctx context.Context) error) HealthChecker {
	return dependencyChecker("database", ping, HealthStatusUnhealthy)
}

// RedisHealthChecker probes the score cache. The cache fails open, so a
// failing Redis only degrades the process.
func RedisHealthChecker(ping func(ctx context.Context) error) HealthChecker {
	return dependencyChecker("redis", ping, HealthStatusDegraded)
}

// RabbitMQHealthChecker probes the event broker. Events are best-effort
// triggers, so a failing broker only degrades the process.
func RabbitMQHealthChecker(ping func(ctx context.Context) error) HealthChecker {
	return dependencyChecker("rabbitmq", ping, HealthStatusDegraded)
}

func dependencyChecker(name string, ping func(ctx context.Context) error, onFailure HealthStatus) HealthChecker {
	return func(ctx context.Context) HealthCheckResult {
		if err := ping(ctx); err != nil {
			return HealthCheckResult{
				Status:  onFailure,
				Message: name + " connection failed: " + err.Error(),
			}
		}
		return HealthCheckResult{
			Status:  HealthStatusHealthy,
			Message: name + " connection healthy",
		}
	}
}
