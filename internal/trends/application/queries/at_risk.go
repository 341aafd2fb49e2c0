package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/trends/domain"
)

// AtRiskQuery requests the employees whose performance needs attention.
type AtRiskQuery struct {
	OrganizationID uuid.UUID
}

// AtRiskHandler filters organization-wide predictions down to employees with
// a confidently declining trend.
type AtRiskHandler struct {
	trends *OrganizationTrendsHandler
}

// NewAtRiskHandler creates a new at-risk handler.
func NewAtRiskHandler(trends *OrganizationTrendsHandler) *AtRiskHandler {
	return &AtRiskHandler{trends: trends}
}

// Handle returns the at-risk subset of the organization's trend results,
// preserving their order.
func (h *AtRiskHandler) Handle(ctx context.Context, query AtRiskQuery) ([]*domain.TrendResult, error) {
	results, err := h.trends.Handle(ctx, OrganizationTrendsQuery{OrganizationID: query.OrganizationID})
	if err != nil {
		return nil, err
	}

	atRisk := make([]*domain.TrendResult, 0, len(results))
	for _, result := range results {
		if result.AtRisk() {
			atRisk = append(atRisk, result)
		}
	}
	return atRisk, nil
}
