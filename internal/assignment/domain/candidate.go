// Package domain contains the core types of the assignment-recommendation
// context.
package domain

import (
	"github.com/google/uuid"

	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// TaskRequirements describes the task a candidate is sought for.
type TaskRequirements struct {
	RequiredSkills []string             `json:"required_skills"`
	Complexity     workforce.Complexity `json:"complexity"`
	Department     string               `json:"department,omitempty"`
	EstimatedHours float64              `json:"estimated_hours,omitempty"`
}

// CandidateSignals are the per-employee store observations the suitability
// computation draws on.
type CandidateSignals struct {
	// ActiveTasks is the employee's current assigned or in-progress count.
	ActiveTasks int

	// RecentCompletions is the number of tasks completed in the last week.
	RecentCompletions int

	// Productivity is the latest score record's value, nil if never scored.
	Productivity *float64
}

// AssignmentCandidate is one ranked recommendation. It is derived on demand
// and never persisted.
type AssignmentCandidate struct {
	EmployeeID        uuid.UUID `json:"employee_id"`
	EmployeeName      string    `json:"employee_name"`
	SuitabilityScore  int       `json:"suitability_score"`
	Reasoning         []string  `json:"reasoning"`
	ActiveTaskCount   int       `json:"active_task_count"`
	ProductivityScore float64   `json:"productivity_score"`
	SkillsMatchPct    float64   `json:"skills_match_percent"`
}

// ValidationResult reports whether a specific employee fits a task.
type ValidationResult struct {
	Suitable bool     `json:"suitable"`
	Score    int      `json:"score"`
	Warnings []string `json:"warnings"`
}
