package domain

import "github.com/google/uuid"

// Trend classifies the direction of an employee's score history.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TrendResult is the derived outcome of a trend prediction. It is computed
// on demand and never persisted.
type TrendResult struct {
	EmployeeID     uuid.UUID `json:"employee_id"`
	Trend          Trend     `json:"trend"`
	Confidence     int       `json:"confidence"`
	CurrentScore   float64   `json:"current_score"`
	PredictedScore float64   `json:"predicted_score"`
	DataPointCount int       `json:"data_point_count"`
	Factors        []string  `json:"factors"`
	Recommendation string    `json:"recommendation"`
}

// AtRisk reports whether the result indicates an employee needing attention:
// a declining trend with confidence above 50.
func (r *TrendResult) AtRisk() bool {
	return r.Trend == TrendDeclining && r.Confidence > 50
}
