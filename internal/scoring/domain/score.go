// Package domain contains the domain model for the productivity scoring
// bounded context.
package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BaselineScore is assigned to employees with no task history yet.
const BaselineScore = 50

// ProductivityScore is an immutable historical scoring fact. Records are
// append-only; a new record is written on every calculation and prior records
// are never updated or deleted.
type ProductivityScore struct {
	ID                 uuid.UUID
	OrganizationID     uuid.UUID
	EmployeeID         uuid.UUID
	Score              float64
	CompletionRate     float64
	AvgCompletionHours float64
	AvgComplexity      float64
	CalculatedAt       time.Time
}

// NewProductivityScore creates a score record, clamping the score to [0,100]
// and rounding it to two decimal places.
func NewProductivityScore(orgID, employeeID uuid.UUID, score, completionRate, avgHours, avgComplexity float64) *ProductivityScore {
	return &ProductivityScore{
		ID:                 uuid.New(),
		OrganizationID:     orgID,
		EmployeeID:         employeeID,
		Score:              Round2(Clamp(score)),
		CompletionRate:     Round2(completionRate),
		AvgCompletionHours: Round2(avgHours),
		AvgComplexity:      Round2(avgComplexity),
		CalculatedAt:       time.Now().UTC(),
	}
}

// NewBaselineScore creates the record written for an employee with no tasks.
func NewBaselineScore(orgID, employeeID uuid.UUID) *ProductivityScore {
	return NewProductivityScore(orgID, employeeID, BaselineScore, 0, 0, 0)
}

// IsStale reports whether the record is older than the given threshold.
func (s *ProductivityScore) IsStale(threshold time.Duration, now time.Time) bool {
	return now.Sub(s.CalculatedAt) > threshold
}

// ScoreWithEmployee joins a score record with employee identity for display.
type ScoreWithEmployee struct {
	Score        *ProductivityScore
	EmployeeName string
	Role         string
	Department   string
}

// Clamp bounds a score value to [0,100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
