package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryRepository defines operations on the append-only score history.
type HistoryRepository interface {
	// Append writes a new score record. Existing records are never modified.
	Append(ctx context.Context, score *ProductivityScore) error

	// Latest retrieves the most recent record for an employee by CalculatedAt,
	// or nil when no record exists.
	Latest(ctx context.Context, orgID, employeeID uuid.UUID) (*ProductivityScore, error)

	// LatestPerEmployee retrieves each employee's single most recent record,
	// joined with identity, for the whole organization, ordered by score
	// descending.
	LatestPerEmployee(ctx context.Context, orgID uuid.UUID) ([]ScoreWithEmployee, error)

	// Series retrieves an employee's records with CalculatedAt at or after the
	// given instant, ordered ascending by CalculatedAt.
	Series(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) ([]*ProductivityScore, error)
}

// Cache is an optional, best-effort store for the latest score per employee.
// Implementations may fail open: a cache error is treated as a miss.
type Cache interface {
	// Get returns the cached latest score, or nil on a miss.
	Get(ctx context.Context, orgID, employeeID uuid.UUID) (*ProductivityScore, error)

	// Set caches the latest score with the given time-to-live.
	Set(ctx context.Context, score *ProductivityScore, ttl time.Duration) error
}
