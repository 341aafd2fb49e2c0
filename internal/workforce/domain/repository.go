package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound indicates the requested employee does not exist in the
// organization or is not visible to the engine.
var ErrEmployeeNotFound = errors.New("employee not found")

// Directory provides employee lookups. Implemented by the platform's data
// store; the engine only reads from it.
type Directory interface {
	// GetEmployee retrieves an employee by ID within an organization.
	// Returns ErrEmployeeNotFound if absent.
	GetEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*Employee, error)

	// ListActiveEmployees retrieves active employees of an organization.
	// An empty department matches all departments.
	ListActiveEmployees(ctx context.Context, orgID uuid.UUID, department string) ([]*Employee, error)
}

// TaskStats aggregates an employee's task history over a time window.
type TaskStats struct {
	Total               int
	Completed           int
	Pending             int
	AvgCompletionHours  float64
	HighComplexityShare float64
}

// CompletionRate returns completed/total as a percentage, 0 when no tasks.
func (s TaskStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// TaskSource provides task history queries. Implemented by the platform's
// data store; the engine only reads from it.
type TaskSource interface {
	// ListByEmployee retrieves all tasks ever assigned to the employee in the
	// organization.
	ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]Task, error)

	// CountActive returns the number of assigned or in-progress tasks.
	CountActive(ctx context.Context, orgID, employeeID uuid.UUID) (int, error)

	// CountCompletedSince returns the number of tasks completed at or after
	// the given instant.
	CountCompletedSince(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (int, error)

	// WindowStats aggregates task statistics for tasks created at or after
	// the given instant.
	WindowStats(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (TaskStats, error)
}
