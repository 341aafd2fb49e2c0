// Package queries contains the read operations of the skill-gap context.
package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/skills/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// EmployeeGapQuery requests a skill-gap report for one employee.
type EmployeeGapQuery struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
}

// EmployeeGapHandler computes per-employee skill gaps.
type EmployeeGapHandler struct {
	directory workforce.Directory
	resolver  *domain.Resolver
}

// NewEmployeeGapHandler creates a new employee gap handler.
func NewEmployeeGapHandler(directory workforce.Directory, resolver *domain.Resolver) *EmployeeGapHandler {
	return &EmployeeGapHandler{directory: directory, resolver: resolver}
}

// Handle computes the gap report. Returns nil (not an error) when the
// employee does not exist.
func (h *EmployeeGapHandler) Handle(ctx context.Context, query EmployeeGapQuery) (*domain.EmployeeSkillGap, error) {
	emp, err := h.directory.GetEmployee(ctx, query.OrganizationID, query.EmployeeID)
	if err != nil {
		if errors.Is(err, workforce.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	required, err := h.resolver.Resolve(ctx, emp.Role)
	if err != nil {
		return nil, err
	}

	var missing []domain.SkillGapEntry
	for _, skill := range required {
		if emp.HasSkill(skill) {
			continue
		}
		priority, reason := domain.ClassifySkill(skill)
		missing = append(missing, domain.SkillGapEntry{
			Skill:    skill,
			Priority: priority,
			Reason:   reason,
		})
	}

	return domain.NewEmployeeSkillGap(emp.ID, emp.Role, required, missing), nil
}
