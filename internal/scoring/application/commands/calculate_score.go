// Package commands contains the write operations of the scoring context.
package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/application/services"
	"github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/eventbus"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// RoutingKeyScoreCalculated is the event published after each score append.
const RoutingKeyScoreCalculated = "score.calculated"

// CalculateScoreCommand requests a fresh score calculation for one employee.
type CalculateScoreCommand struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
}

// CalculateScoreHandler computes and appends productivity score records.
//
// Concurrent calls for the same employee may append near-simultaneous records;
// this is tolerated. History is append-only and read accessors always take the
// newest record by CalculatedAt.
type CalculateScoreHandler struct {
	tasks     workforce.TaskSource
	history   domain.HistoryRepository
	engine    *services.ScoreEngine
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewCalculateScoreHandler creates a new calculate score handler.
func NewCalculateScoreHandler(
	tasks workforce.TaskSource,
	history domain.HistoryRepository,
	engine *services.ScoreEngine,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *CalculateScoreHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalculateScoreHandler{
		tasks:     tasks,
		history:   history,
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the calculate score command. Each call appends a new record
// with the current timestamp; prior records are never overwritten.
func (h *CalculateScoreHandler) Handle(ctx context.Context, cmd CalculateScoreCommand) (*domain.ProductivityScore, error) {
	tasks, err := h.tasks.ListByEmployee(ctx, cmd.OrganizationID, cmd.EmployeeID)
	if err != nil {
		return nil, err
	}

	score := h.engine.Score(cmd.OrganizationID, cmd.EmployeeID, tasks)

	if err := h.history.Append(ctx, score); err != nil {
		return nil, err
	}

	h.publishCalculated(ctx, score)

	return score, nil
}

// Recalculate adapts Handle to the services.Calculator interface used by the
// freshness policy.
func (h *CalculateScoreHandler) Recalculate(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	return h.Handle(ctx, CalculateScoreCommand{OrganizationID: orgID, EmployeeID: employeeID})
}

type scoreCalculatedEvent struct {
	ScoreID        uuid.UUID `json:"score_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	EmployeeID     uuid.UUID `json:"employee_id"`
	Score          float64   `json:"score"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// publishCalculated emits the score.calculated event. Publishing is
// best-effort; a broker failure never fails the calculation.
func (h *CalculateScoreHandler) publishCalculated(ctx context.Context, score *domain.ProductivityScore) {
	if h.publisher == nil {
		return
	}

	payload, err := json.Marshal(scoreCalculatedEvent{
		ScoreID:        score.ID,
		OrganizationID: score.OrganizationID,
		EmployeeID:     score.EmployeeID,
		Score:          score.Score,
		CalculatedAt:   score.CalculatedAt,
	})
	if err != nil {
		h.logger.Error("failed to encode score event", "error", err)
		return
	}

	envelope, err := json.Marshal(eventbus.Event{
		EventID:       uuid.New(),
		AggregateID:   score.EmployeeID,
		AggregateType: "ProductivityScore",
		RoutingKey:    RoutingKeyScoreCalculated,
		OccurredAt:    time.Now(),
		Payload:       payload,
		CorrelationID: observability.CorrelationIDFromContext(ctx),
	})
	if err != nil {
		h.logger.Error("failed to encode event envelope", "error", err)
		return
	}

	if err := h.publisher.Publish(ctx, RoutingKeyScoreCalculated, envelope); err != nil {
		h.logger.Warn("failed to publish score event",
			"employee_id", score.EmployeeID,
			"error", err,
		)
	}
}
