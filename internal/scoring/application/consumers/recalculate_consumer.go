// Package consumers contains the scoring context's event consumers.
package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/application"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/eventbus"
)

// RoutingKeyRecalculate triggers an organization-wide score recalculation.
const RoutingKeyRecalculate = "org.recalculate"

type recalculatePayload struct {
	OrganizationID uuid.UUID `json:"organization_id"`
}

// RecalculateConsumer runs a batch score recalculation when an organization
// requests one over the event bus.
type RecalculateConsumer struct {
	scoring *application.Service
	logger  *slog.Logger
}

// NewRecalculateConsumer creates a new recalculation consumer.
func NewRecalculateConsumer(scoring *application.Service, logger *slog.Logger) *RecalculateConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecalculateConsumer{scoring: scoring, logger: logger}
}

// EventTypes returns the routing keys this consumer handles.
func (c *RecalculateConsumer) EventTypes() []string {
	return []string{RoutingKeyRecalculate}
}

// Handle runs the batch recalculation for the organization in the payload.
func (c *RecalculateConsumer) Handle(ctx context.Context, event *eventbus.Event) error {
	var payload recalculatePayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode recalculate payload: %w", err)
	}
	if payload.OrganizationID == uuid.Nil {
		// Fall back to the aggregate ID for producers that omit the payload.
		payload.OrganizationID = event.AggregateID
	}
	if payload.OrganizationID == uuid.Nil {
		return fmt.Errorf("recalculate event %s carries no organization id", event.EventID)
	}

	result, err := c.scoring.BatchCalculateScores(ctx, payload.OrganizationID)
	if err != nil {
		return err
	}

	c.logger.Info("recalculation completed",
		"organization_id", payload.OrganizationID,
		"succeeded", result.Succeeded(),
		"failed", len(result.Failures),
	)
	return nil
}
