// Package domain contains the domain model for the skill-gap bounded context.
package domain

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// GapPriority ranks how urgently a missing skill should be addressed.
// Lower values are more severe.
type GapPriority int

const (
	PriorityCritical GapPriority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

func (p GapPriority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// SkillGapEntry describes one required skill the employee lacks.
type SkillGapEntry struct {
	Skill    string
	Priority GapPriority
	Reason   string
}

// EmployeeSkillGap is the derived gap report for one employee. Not persisted.
type EmployeeSkillGap struct {
	EmployeeID     uuid.UUID
	Role           string
	RequiredSkills []string
	MissingSkills  []SkillGapEntry
	GapScore       int
}

// NewEmployeeSkillGap builds a gap report, sorting missing skills by priority
// severity (critical first) while preserving requirement order within equal
// priorities.
func NewEmployeeSkillGap(employeeID uuid.UUID, role string, required []string, missing []SkillGapEntry) *EmployeeSkillGap {
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Priority < missing[j].Priority
	})

	score := 0
	if len(required) > 0 {
		score = int(math.Round(float64(len(missing)) / float64(len(required)) * 100))
	}

	return &EmployeeSkillGap{
		EmployeeID:     employeeID,
		Role:           role,
		RequiredSkills: required,
		MissingSkills:  missing,
		GapScore:       score,
	}
}

// OrganizationSkillGap aggregates one missing skill across an organization.
type OrganizationSkillGap struct {
	Skill         string
	Priority      GapPriority // highest severity observed across employees
	MissingCount  int
	AffectedRoles []string
}
