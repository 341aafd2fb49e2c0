package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
)

// GetAllScoresQuery requests the latest score per employee for an organization.
type GetAllScoresQuery struct {
	OrganizationID uuid.UUID
}

// GetAllScoresHandler handles organization-wide score listings.
type GetAllScoresHandler struct {
	history domain.HistoryRepository
}

// NewGetAllScoresHandler creates a new get all scores handler.
func NewGetAllScoresHandler(history domain.HistoryRepository) *GetAllScoresHandler {
	return &GetAllScoresHandler{history: history}
}

// Handle returns each employee's single most recent record joined with
// identity, ordered by score descending.
func (h *GetAllScoresHandler) Handle(ctx context.Context, query GetAllScoresQuery) ([]domain.ScoreWithEmployee, error) {
	return h.history.LatestPerEmployee(ctx, query.OrganizationID)
}
