package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySkill(t *testing.T) {
	tests := []struct {
		name         string
		skill        string
		wantPriority GapPriority
	}{
		{"programming language is critical", "Python", PriorityCritical},
		{"framework is critical", "React", PriorityCritical},
		{"database is critical", "PostgreSQL", PriorityCritical},
		{"container tooling is high", "Docker", PriorityHigh},
		{"cloud platform is high", "AWS", PriorityHigh},
		{"api design is high", "REST APIs", PriorityHigh},
		{"methodology is medium", "Agile", PriorityMedium},
		{"process skill is medium", "Code Review", PriorityMedium},
		{"soft skill is low", "Communication", PriorityLow},
		{"unknown skill is low", "Juggling", PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, reason := ClassifySkill(tt.skill)
			assert.Equal(t, tt.wantPriority, priority)
			assert.NotEmpty(t, reason)
		})
	}

	t.Run("matching is case-insensitive", func(t *testing.T) {
		upper, _ := ClassifySkill("JAVASCRIPT")
		lower, _ := ClassifySkill("javascript")
		assert.Equal(t, upper, lower)
		assert.Equal(t, PriorityCritical, upper)
	})

	t.Run("substring containment matches composite names", func(t *testing.T) {
		priority, _ := ClassifySkill("Advanced TypeScript Patterns")
		assert.Equal(t, PriorityCritical, priority)
	})
}

func TestGapPriority_String(t *testing.T) {
	assert.Equal(t, "critical", PriorityCritical.String())
	assert.Equal(t, "high", PriorityHigh.String())
	assert.Equal(t, "medium", PriorityMedium.String())
	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "unknown", GapPriority(42).String())
}
