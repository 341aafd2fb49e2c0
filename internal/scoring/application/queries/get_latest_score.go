// Package queries contains the read operations of the scoring context.
package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
)

// GetLatestScoreQuery requests the most recent score record for an employee.
type GetLatestScoreQuery struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
}

// GetLatestScoreHandler handles latest-score queries.
type GetLatestScoreHandler struct {
	history domain.HistoryRepository
}

// NewGetLatestScoreHandler creates a new get latest score handler.
func NewGetLatestScoreHandler(history domain.HistoryRepository) *GetLatestScoreHandler {
	return &GetLatestScoreHandler{history: history}
}

// Handle returns the most recent record by CalculatedAt, or nil when the
// employee has never been scored.
func (h *GetLatestScoreHandler) Handle(ctx context.Context, query GetLatestScoreQuery) (*domain.ProductivityScore, error) {
	return h.history.Latest(ctx, query.OrganizationID, query.EmployeeID)
}
