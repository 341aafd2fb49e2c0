// Package services contains domain services for the assignment context.
package services

import (
	"fmt"
	"math"

	"github.com/luminahr/talentscope/internal/assignment/domain"
	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// SuitabilityEngineConfig tunes how candidate signals combine into a
// suitability score.
type SuitabilityEngineConfig struct {
	SkillsWeight       float64
	WorkloadWeight     float64
	ProductivityWeight float64
	AvailabilityWeight float64

	// MaxActiveTasks is the workload at which the workload score reaches 0
	// and a capacity warning is raised.
	MaxActiveTasks int
}

// DefaultSuitabilityEngineConfig returns the production configuration.
func DefaultSuitabilityEngineConfig() SuitabilityEngineConfig {
	return SuitabilityEngineConfig{
		SkillsWeight:       0.4,
		WorkloadWeight:     0.3,
		ProductivityWeight: 0.2,
		AvailabilityWeight: 0.1,
		MaxActiveTasks:     10,
	}
}

// SuitabilityEngine scores how well an employee fits a task.
type SuitabilityEngine struct {
	config SuitabilityEngineConfig
}

// NewSuitabilityEngine creates a new engine with the given configuration.
func NewSuitabilityEngine(cfg SuitabilityEngineConfig) *SuitabilityEngine {
	return &SuitabilityEngine{config: cfg}
}

// Evaluate computes the candidate record for one employee.
func (e *SuitabilityEngine) Evaluate(emp *workforce.Employee, req domain.TaskRequirements, signals domain.CandidateSignals) *domain.AssignmentCandidate {
	skillsMatch := e.skillsMatch(emp, req.RequiredSkills)
	workload := e.workloadScore(signals.ActiveTasks)
	availability := availabilityScore(signals.RecentCompletions)

	productivity := float64(scoring.BaselineScore)
	if signals.Productivity != nil {
		productivity = *signals.Productivity
	}

	score := int(math.Round(
		skillsMatch*e.config.SkillsWeight +
			workload*e.config.WorkloadWeight +
			productivity*e.config.ProductivityWeight +
			availability*e.config.AvailabilityWeight,
	))

	return &domain.AssignmentCandidate{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		SuitabilityScore:  score,
		Reasoning:         e.reasoning(skillsMatch, productivity, signals),
		ActiveTaskCount:   signals.ActiveTasks,
		ProductivityScore: productivity,
		SkillsMatchPct:    skillsMatch,
	}
}

// skillsMatch returns the percentage of required skills the employee has,
// 100 when nothing is required.
func (e *SuitabilityEngine) skillsMatch(emp *workforce.Employee, required []string) float64 {
	if len(required) == 0 {
		return 100
	}
	matched := 0
	for _, skill := range required {
		if emp.HasSkill(skill) {
			matched++
		}
	}
	return scoring.Round2(float64(matched) / float64(len(required)) * 100)
}

// workloadScore rewards free capacity: 0 active tasks scores 100, each
// active task costs 10 points, MaxActiveTasks or more scores 0.
func (e *SuitabilityEngine) workloadScore(active int) float64 {
	if active >= e.config.MaxActiveTasks {
		return 0
	}
	return scoring.Clamp(float64(100 - active*10))
}

// availabilityScore tiers on completions over the last week.
func availabilityScore(recentCompletions int) float64 {
	switch {
	case recentCompletions >= 3:
		return 100
	case recentCompletions >= 2:
		return 80
	case recentCompletions >= 1:
		return 60
	default:
		return 40
	}
}

func (e *SuitabilityEngine) reasoning(skillsMatch, productivity float64, signals domain.CandidateSignals) []string {
	var reasons []string

	switch {
	case skillsMatch == 100:
		reasons = append(reasons, "has all required skills")
	case skillsMatch >= 50:
		reasons = append(reasons, fmt.Sprintf("has %.0f%% of required skills", skillsMatch))
	default:
		reasons = append(reasons, fmt.Sprintf("missing most required skills (%.0f%% match)", skillsMatch))
	}

	switch {
	case signals.ActiveTasks >= e.config.MaxActiveTasks:
		reasons = append(reasons, fmt.Sprintf("at capacity with %d active tasks", signals.ActiveTasks))
	case signals.ActiveTasks >= 7:
		reasons = append(reasons, "high current workload")
	case signals.ActiveTasks == 0:
		reasons = append(reasons, "no current workload")
	default:
		reasons = append(reasons, fmt.Sprintf("moderate workload of %d active tasks", signals.ActiveTasks))
	}

	switch {
	case productivity >= 70:
		reasons = append(reasons, "strong productivity record")
	case productivity < 40:
		reasons = append(reasons, "low recent productivity")
	}

	if signals.RecentCompletions >= 3 {
		reasons = append(reasons, "completing tasks regularly this week")
	}

	return reasons
}
