package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the task lifecycle state. Transitions are enforced by the
// owning HR platform; this engine only reads them.
type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// IsActive reports whether the task still counts against an employee's workload.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusInProgress
}

// Complexity classifies how demanding a task is.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Weight returns the numeric weight used when averaging complexity handled.
func (c Complexity) Weight() float64 {
	switch c {
	case ComplexityHigh:
		return 2
	case ComplexityMedium:
		return 1.5
	default:
		return 1
	}
}

// Task is the read model of a task-completion record as supplied by the
// platform's data store.
type Task struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	AssigneeID     uuid.UUID
	Status         Status
	Complexity     Complexity
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// CompletionHours returns the hours between creation and completion.
// The second return value is false when the task has no timing data.
func (t Task) CompletionHours() (float64, bool) {
	if t.Status != StatusCompleted || t.CompletedAt == nil {
		return 0, false
	}
	return t.CompletedAt.Sub(t.CreatedAt).Hours(), true
}

// AggregateStats computes TaskStats over a task list.
func AggregateStats(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}

	var hours float64
	var timed, highComplexity int
	for _, t := range tasks {
		switch {
		case t.Status == StatusCompleted:
			stats.Completed++
			if t.Complexity == ComplexityHigh {
				highComplexity++
			}
			if h, ok := t.CompletionHours(); ok {
				hours += h
				timed++
			}
		case t.Status.IsActive():
			stats.Pending++
		}
	}

	if timed > 0 {
		stats.AvgCompletionHours = hours / float64(timed)
	}
	if stats.Completed > 0 {
		stats.HighComplexityShare = float64(highComplexity) / float64(stats.Completed)
	}
	return stats
}
