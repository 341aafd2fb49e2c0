// Package services contains domain services for the scoring context.
package services

import (
	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// ScoreEngineConfig tunes how task-history signals combine into a score.
type ScoreEngineConfig struct {
	CompletionRateWeight float64
	SpeedWeight          float64
	ComplexityWeight     float64

	// ReferenceHours is the average completion time that earns a full speed
	// score; slower averages are penalized proportionally.
	ReferenceHours float64

	// DefaultHours is assumed when no completed task carries timing data.
	DefaultHours float64

	// MaxComplexityWeight normalizes the complexity average.
	MaxComplexityWeight float64
}

// DefaultScoreEngineConfig returns the production configuration.
func DefaultScoreEngineConfig() ScoreEngineConfig {
	return ScoreEngineConfig{
		CompletionRateWeight: 0.4,
		SpeedWeight:          0.3,
		ComplexityWeight:     0.3,
		ReferenceHours:       24,
		DefaultHours:         24,
		MaxComplexityWeight:  workforce.ComplexityHigh.Weight(),
	}
}

// ScoreEngine computes productivity score records from task history.
type ScoreEngine struct {
	config ScoreEngineConfig
}

// NewScoreEngine creates a new engine with the given configuration.
func NewScoreEngine(cfg ScoreEngineConfig) *ScoreEngine {
	return &ScoreEngine{config: cfg}
}

// Score computes a new score record for the employee's full task history.
// An employee with no tasks receives the baseline record.
func (e *ScoreEngine) Score(orgID, employeeID uuid.UUID, tasks []workforce.Task) *domain.ProductivityScore {
	if len(tasks) == 0 {
		return domain.NewBaselineScore(orgID, employeeID)
	}

	var completed int
	var hours float64
	var timed int
	var complexity float64
	for _, t := range tasks {
		if t.Status != workforce.StatusCompleted {
			continue
		}
		completed++
		complexity += t.Complexity.Weight()
		if h, ok := t.CompletionHours(); ok {
			hours += h
			timed++
		}
	}

	completionRate := float64(completed) / float64(len(tasks)) * 100

	avgHours := e.config.DefaultHours
	if timed > 0 {
		avgHours = hours / float64(timed)
	}

	avgComplexity := 1.0
	if completed > 0 {
		avgComplexity = complexity / float64(completed)
	}

	speedScore := 100.0
	if avgHours > 0 {
		speedScore = domain.Clamp(e.config.ReferenceHours / avgHours * 100)
	}
	complexityScore := avgComplexity / e.config.MaxComplexityWeight * 100

	raw := completionRate*e.config.CompletionRateWeight +
		speedScore*e.config.SpeedWeight +
		complexityScore*e.config.ComplexityWeight

	return domain.NewProductivityScore(orgID, employeeID, raw, completionRate, avgHours, avgComplexity)
}
