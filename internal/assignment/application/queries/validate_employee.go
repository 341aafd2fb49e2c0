package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/assignment/domain"
)

// ValidateEmployeeQuery asks whether a specific employee fits a task.
type ValidateEmployeeQuery struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
	Requirements   domain.TaskRequirements
}

// ValidateEmployeeHandler checks one employee against task requirements.
type ValidateEmployeeHandler struct {
	recommend *RecommendEmployeesHandler
}

// NewValidateEmployeeHandler creates a new validation handler.
func NewValidateEmployeeHandler(recommend *RecommendEmployeesHandler) *ValidateEmployeeHandler {
	return &ValidateEmployeeHandler{recommend: recommend}
}

// Handle re-runs the candidate evaluation for the employee and flags
// warnings on weak factors. The employee is suitable only with a score of at
// least 50 and no warnings.
func (h *ValidateEmployeeHandler) Handle(ctx context.Context, query ValidateEmployeeQuery) (*domain.ValidationResult, error) {
	candidate, err := h.recommend.EvaluateEmployee(ctx, query.OrganizationID, query.EmployeeID, query.Requirements)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return &domain.ValidationResult{
			Suitable: false,
			Warnings: []string{"employee not found or inactive"},
		}, nil
	}

	var warnings []string
	if candidate.SkillsMatchPct < 50 {
		warnings = append(warnings, fmt.Sprintf("skills match is only %.0f%%", candidate.SkillsMatchPct))
	}
	if candidate.ActiveTaskCount >= 8 {
		warnings = append(warnings, fmt.Sprintf("heavy current workload of %d active tasks", candidate.ActiveTaskCount))
	}
	if candidate.ProductivityScore < 40 {
		warnings = append(warnings, fmt.Sprintf("low productivity score of %.0f", candidate.ProductivityScore))
	}

	return &domain.ValidationResult{
		Suitable: candidate.SuitabilityScore >= 50 && len(warnings) == 0,
		Score:    candidate.SuitabilityScore,
		Warnings: warnings,
	}, nil
}
