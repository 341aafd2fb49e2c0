package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luminahr/talentscope/internal/assignment/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestSuitabilityEngine_Evaluate(t *testing.T) {
	engine := NewSuitabilityEngine(DefaultSuitabilityEngineConfig())

	employee := func(skills ...string) *workforce.Employee {
		return &workforce.Employee{ID: uuid.New(), Name: "Dana", Skills: skills, Active: true}
	}

	t.Run("ideal candidate scores near the top", func(t *testing.T) {
		candidate := engine.Evaluate(
			employee("Go", "SQL"),
			domain.TaskRequirements{RequiredSkills: []string{"Go", "SQL"}},
			domain.CandidateSignals{ActiveTasks: 0, RecentCompletions: 3, Productivity: floatPtr(90)},
		)

		// 100×0.4 + 100×0.3 + 90×0.2 + 100×0.1 = 98
		assert.Equal(t, 98, candidate.SuitabilityScore)
		assert.Equal(t, 100.0, candidate.SkillsMatchPct)
		assert.Contains(t, candidate.Reasoning, "has all required skills")
		assert.Contains(t, candidate.Reasoning, "no current workload")
		assert.Contains(t, candidate.Reasoning, "strong productivity record")
		assert.Contains(t, candidate.Reasoning, "completing tasks regularly this week")
	})

	t.Run("partial skills match is proportional", func(t *testing.T) {
		candidate := engine.Evaluate(
			employee("Go"),
			domain.TaskRequirements{RequiredSkills: []string{"Go", "SQL", "Docker", "Kubernetes"}},
			domain.CandidateSignals{},
		)

		assert.Equal(t, 25.0, candidate.SkillsMatchPct)
		assert.Contains(t, candidate.Reasoning, "missing most required skills (25% match)")
	})

	t.Run("no required skills counts as a full match", func(t *testing.T) {
		candidate := engine.Evaluate(employee(), domain.TaskRequirements{}, domain.CandidateSignals{})

		assert.Equal(t, 100.0, candidate.SkillsMatchPct)
	})

	t.Run("skill comparison is case-insensitive", func(t *testing.T) {
		candidate := engine.Evaluate(
			employee("go", "sql"),
			domain.TaskRequirements{RequiredSkills: []string{"Go", "SQL"}},
			domain.CandidateSignals{},
		)

		assert.Equal(t, 100.0, candidate.SkillsMatchPct)
	})

	t.Run("workload score falls ten points per active task", func(t *testing.T) {
		score := func(active int) int {
			return engine.Evaluate(employee(), domain.TaskRequirements{},
				domain.CandidateSignals{ActiveTasks: active}).SuitabilityScore
		}

		// Only the workload component varies: 0.3 × workloadScore.
		assert.Equal(t, score(0)-score(5), 15)
		assert.Equal(t, score(5)-score(10), 15)
		assert.Equal(t, score(10), score(12)) // both at capacity
	})

	t.Run("at capacity is called out", func(t *testing.T) {
		candidate := engine.Evaluate(employee(), domain.TaskRequirements{},
			domain.CandidateSignals{ActiveTasks: 10})

		assert.Contains(t, candidate.Reasoning, "at capacity with 10 active tasks")
	})

	t.Run("availability tiers on recent completions", func(t *testing.T) {
		score := func(completions int) int {
			return engine.Evaluate(employee(), domain.TaskRequirements{},
				domain.CandidateSignals{RecentCompletions: completions}).SuitabilityScore
		}

		assert.Greater(t, score(3), score(2))
		assert.Greater(t, score(2), score(1))
		assert.Greater(t, score(1), score(0))
		assert.Equal(t, score(3), score(5)) // top tier saturates
	})

	t.Run("unknown productivity defaults to the baseline", func(t *testing.T) {
		candidate := engine.Evaluate(employee(), domain.TaskRequirements{}, domain.CandidateSignals{})

		assert.Equal(t, 50.0, candidate.ProductivityScore)
	})

	t.Run("low productivity is called out", func(t *testing.T) {
		candidate := engine.Evaluate(employee(), domain.TaskRequirements{},
			domain.CandidateSignals{Productivity: floatPtr(30)})

		assert.Equal(t, 30.0, candidate.ProductivityScore)
		assert.Contains(t, candidate.Reasoning, "low recent productivity")
	})

	t.Run("moderate workload is described with its count", func(t *testing.T) {
		candidate := engine.Evaluate(employee(), domain.TaskRequirements{},
			domain.CandidateSignals{ActiveTasks: 3})

		assert.Contains(t, candidate.Reasoning, "moderate workload of 3 active tasks")
	})
}
