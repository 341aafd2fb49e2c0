// Package services contains domain services for the trend-prediction
// context.
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/trends/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// PredictorConfig tunes the trend prediction.
type PredictorConfig struct {
	// Window bounds how far back score history is considered.
	Window time.Duration

	// MinPoints is the minimum series length for a regression; shorter
	// series produce a degraded stable result with zero confidence.
	MinPoints int

	// SlopeThreshold is the score-units-per-day magnitude beyond which a
	// trend counts as improving or declining.
	SlopeThreshold float64

	// HorizonDays is how far past the last observation the prediction
	// extrapolates.
	HorizonDays float64
}

// DefaultPredictorConfig returns the production configuration.
func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{
		Window:         30 * 24 * time.Hour,
		MinPoints:      4,
		SlopeThreshold: 0.5,
		HorizonDays:    7,
	}
}

// Predictor fits a trend line over an employee's score history and explains
// it with task-history heuristics.
type Predictor struct {
	config PredictorConfig
}

// NewPredictor creates a new predictor with the given configuration.
func NewPredictor(cfg PredictorConfig) *Predictor {
	return &Predictor{config: cfg}
}

// Config returns the predictor's configuration.
func (p *Predictor) Config() PredictorConfig {
	return p.config
}

// Predict computes the trend result for a score series ordered ascending by
// calculation time. stats aggregates the employee's tasks over the same
// window and feeds the contributing-factor heuristics.
func (p *Predictor) Predict(employeeID uuid.UUID, series []*scoring.ProductivityScore, stats workforce.TaskStats) *domain.TrendResult {
	if len(series) < p.config.MinPoints {
		current := float64(scoring.BaselineScore)
		if len(series) > 0 {
			current = series[len(series)-1].Score
		}
		return &domain.TrendResult{
			EmployeeID:     employeeID,
			Trend:          domain.TrendStable,
			Confidence:     0,
			CurrentScore:   current,
			PredictedScore: current,
			DataPointCount: len(series),
			Factors:        []string{"insufficient data"},
			Recommendation: "Not enough scoring history for a reliable prediction; continue monitoring.",
		}
	}

	first := series[0].CalculatedAt
	points := make([]domain.Point, len(series))
	for i, s := range series {
		points[i] = domain.Point{
			X: s.CalculatedAt.Sub(first).Hours() / 24,
			Y: s.Score,
		}
	}

	fit := domain.Fit(points)

	trend := domain.TrendStable
	switch {
	case fit.Slope > p.config.SlopeThreshold:
		trend = domain.TrendImproving
	case fit.Slope < -p.config.SlopeThreshold:
		trend = domain.TrendDeclining
	}

	confidence := int(math.Round(math.Abs(fit.RSquared) * 100))
	lastX := points[len(points)-1].X
	predicted := scoring.Clamp(math.Round(fit.Slope*(lastX+p.config.HorizonDays) + fit.Intercept))

	result := &domain.TrendResult{
		EmployeeID:     employeeID,
		Trend:          trend,
		Confidence:     confidence,
		CurrentScore:   series[len(series)-1].Score,
		PredictedScore: predicted,
		DataPointCount: len(series),
		Factors:        contributingFactors(trend, stats),
		Recommendation: recommendation(trend, confidence),
	}
	return result
}

// contributingFactors derives factor phrases from recent task statistics,
// matched to the trend direction.
func contributingFactors(trend domain.Trend, stats workforce.TaskStats) []string {
	var factors []string

	switch trend {
	case domain.TrendDeclining:
		if stats.Total > 0 && stats.CompletionRate() < 50 {
			factors = append(factors, fmt.Sprintf("low task completion rate (%.0f%%)", stats.CompletionRate()))
		}
		if stats.Pending > 5 {
			factors = append(factors, fmt.Sprintf("growing backlog of %d pending tasks", stats.Pending))
		}
		if stats.AvgCompletionHours > 48 {
			factors = append(factors, fmt.Sprintf("slow average completion time (%.1f hours)", stats.AvgCompletionHours))
		}
	case domain.TrendImproving:
		if stats.Total > 0 && stats.CompletionRate() > 70 {
			factors = append(factors, fmt.Sprintf("high task completion rate (%.0f%%)", stats.CompletionRate()))
		}
		if stats.HighComplexityShare > 0.5 {
			factors = append(factors, "consistently handling high-complexity tasks")
		}
		if stats.AvgCompletionHours > 0 && stats.AvgCompletionHours < 24 {
			factors = append(factors, fmt.Sprintf("fast average completion time (%.1f hours)", stats.AvgCompletionHours))
		}
	case domain.TrendStable:
		if stats.Total > 0 && stats.CompletionRate() >= 50 {
			factors = append(factors, "steady task completion")
		}
	}

	if len(factors) == 0 {
		switch trend {
		case domain.TrendDeclining:
			factors = append(factors, "overall downward score movement")
		case domain.TrendImproving:
			factors = append(factors, "overall upward score movement")
		default:
			factors = append(factors, "consistent recent performance")
		}
	}
	return factors
}

// recommendation selects guidance appropriate to the trend direction and how
// confident the fit is.
func recommendation(trend domain.Trend, confidence int) string {
	switch trend {
	case domain.TrendDeclining:
		if confidence > 70 {
			return "Performance is declining with high confidence; schedule an intervention conversation promptly."
		}
		return "Early signs of decline; monitor closely over the coming weeks."
	case domain.TrendImproving:
		return "Performance is trending upward; reinforce what is working and recognize the progress."
	default:
		return "Performance is stable; continue with the current approach."
	}
}
