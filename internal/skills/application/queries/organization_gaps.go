package queries

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/skills/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// OrganizationGapsQuery requests aggregated skill gaps for an organization.
type OrganizationGapsQuery struct {
	OrganizationID uuid.UUID
}

// OrganizationGapsHandler aggregates per-employee gaps across an organization.
type OrganizationGapsHandler struct {
	directory workforce.Directory
	resolver  *domain.Resolver
}

// NewOrganizationGapsHandler creates a new organization gaps handler.
func NewOrganizationGapsHandler(directory workforce.Directory, resolver *domain.Resolver) *OrganizationGapsHandler {
	return &OrganizationGapsHandler{directory: directory, resolver: resolver}
}

// Handle returns one entry per distinct missing skill, sorted by priority
// severity then by affected-employee count descending.
func (h *OrganizationGapsHandler) Handle(ctx context.Context, query OrganizationGapsQuery) ([]domain.OrganizationSkillGap, error) {
	employees, err := h.directory.ListActiveEmployees(ctx, query.OrganizationID, "")
	if err != nil {
		return nil, err
	}

	type aggregate struct {
		gap   domain.OrganizationSkillGap
		roles map[string]struct{}
	}
	bySkill := make(map[string]*aggregate)

	for _, emp := range employees {
		required, err := h.resolver.Resolve(ctx, emp.Role)
		if err != nil {
			return nil, err
		}

		for _, skill := range required {
			if emp.HasSkill(skill) {
				continue
			}

			key := strings.ToLower(skill)
			agg, ok := bySkill[key]
			if !ok {
				priority, _ := domain.ClassifySkill(skill)
				agg = &aggregate{
					gap:   domain.OrganizationSkillGap{Skill: skill, Priority: priority},
					roles: make(map[string]struct{}),
				}
				bySkill[key] = agg
			}
			agg.gap.MissingCount++
			if _, seen := agg.roles[emp.Role]; !seen {
				agg.roles[emp.Role] = struct{}{}
				agg.gap.AffectedRoles = append(agg.gap.AffectedRoles, emp.Role)
			}
		}
	}

	gaps := make([]domain.OrganizationSkillGap, 0, len(bySkill))
	for _, agg := range bySkill {
		sort.Strings(agg.gap.AffectedRoles)
		gaps = append(gaps, agg.gap)
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority < gaps[j].Priority
		}
		if gaps[i].MissingCount != gaps[j].MissingCount {
			return gaps[i].MissingCount > gaps[j].MissingCount
		}
		return gaps[i].Skill < gaps[j].Skill
	})

	return gaps, nil
}
