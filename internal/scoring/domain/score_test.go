package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewProductivityScore(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()

	t.Run("clamps and rounds the score", func(t *testing.T) {
		score := NewProductivityScore(orgID, employeeID, 123.456, 80, 12.5, 1.5)

		assert.Equal(t, 100.0, score.Score)
		assert.Equal(t, 80.0, score.CompletionRate)
		assert.Equal(t, orgID, score.OrganizationID)
		assert.Equal(t, employeeID, score.EmployeeID)
		assert.NotEqual(t, uuid.Nil, score.ID)
		assert.False(t, score.CalculatedAt.IsZero())
	})

	t.Run("negative score clamps to zero", func(t *testing.T) {
		score := NewProductivityScore(orgID, employeeID, -5, 0, 0, 0)
		assert.Equal(t, 0.0, score.Score)
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		score := NewProductivityScore(orgID, employeeID, 66.666, 33.333, 1.005, 1.999)
		assert.Equal(t, 66.67, score.Score)
		assert.Equal(t, 33.33, score.CompletionRate)
	})
}

func TestNewBaselineScore(t *testing.T) {
	score := NewBaselineScore(uuid.New(), uuid.New())

	assert.Equal(t, float64(BaselineScore), score.Score)
	assert.Equal(t, 0.0, score.CompletionRate)
	assert.Equal(t, 0.0, score.AvgCompletionHours)
	assert.Equal(t, 0.0, score.AvgComplexity)
}

func TestProductivityScore_IsStale(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	score := &ProductivityScore{CalculatedAt: now.Add(-90 * time.Minute)}

	assert.True(t, score.IsStale(time.Hour, now))
	assert.False(t, score.IsStale(2*time.Hour, now))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 50.0, Clamp(50))
	assert.Equal(t, 100.0, Clamp(101))
}
