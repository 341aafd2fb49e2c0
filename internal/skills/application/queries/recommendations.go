package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/skills/domain"
)

// RecommendationsQuery requests development guidance for an employee.
type RecommendationsQuery struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
}

// RecommendationsResult pairs an employee's gap analysis with guidance text.
type RecommendationsResult struct {
	Gap             *domain.EmployeeSkillGap `json:"gap"`
	Recommendations []string                 `json:"recommendations"`
}

// RecommendationsHandler turns a gap analysis into development guidance.
type RecommendationsHandler struct {
	gaps *EmployeeGapHandler
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(gaps *EmployeeGapHandler) *RecommendationsHandler {
	return &RecommendationsHandler{gaps: gaps}
}

// Handle runs the gap analysis for the employee and derives guidance from it.
// A nil result means the employee was not found.
func (h *RecommendationsHandler) Handle(ctx context.Context, query RecommendationsQuery) (*RecommendationsResult, error) {
	gap, err := h.gaps.Handle(ctx, EmployeeGapQuery{
		OrganizationID: query.OrganizationID,
		EmployeeID:     query.EmployeeID,
	})
	if err != nil {
		return nil, err
	}
	if gap == nil {
		return nil, nil
	}

	return &RecommendationsResult{
		Gap:             gap,
		Recommendations: BuildRecommendations(gap),
	}, nil
}

// BuildRecommendations produces human-readable guidance for a gap analysis.
func BuildRecommendations(gap *domain.EmployeeSkillGap) []string {
	if len(gap.MissingSkills) == 0 {
		return []string{
			"All required skills for the role are covered; consider an advanced certification to deepen expertise.",
		}
	}

	var critical, high []string
	for _, entry := range gap.MissingSkills {
		switch entry.Priority {
		case domain.PriorityCritical:
			critical = append(critical, entry.Skill)
		case domain.PriorityHigh:
			high = append(high, entry.Skill)
		}
	}

	var recs []string
	if len(critical) > 0 {
		recs = append(recs, fmt.Sprintf("Prioritize closing critical skill gaps: %s.", strings.Join(critical, ", ")))
	}
	if len(high) > 0 {
		recs = append(recs, fmt.Sprintf("Schedule development time for high-priority skills: %s.", strings.Join(high, ", ")))
	}
	if gap.GapScore > 50 {
		recs = append(recs, "Enroll in a structured training program to cover the outstanding requirements.")
	}
	if gap.GapScore > 70 {
		recs = append(recs, "Pair with a mentor or consider a role adjustment while the gaps are addressed.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Address the remaining skill gaps through on-the-job practice and peer review.")
	}
	return recs
}
