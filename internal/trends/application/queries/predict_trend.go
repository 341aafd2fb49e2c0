// Package queries contains the read operations of the trend-prediction
// context.
package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/trends/application/services"
	"github.com/luminahr/talentscope/internal/trends/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// PredictTrendQuery requests a performance trend prediction for one employee.
type PredictTrendQuery struct {
	OrganizationID uuid.UUID
	EmployeeID     uuid.UUID
}

// PredictTrendHandler fits a trend over an employee's recent score history.
type PredictTrendHandler struct {
	directory workforce.Directory
	tasks     workforce.TaskSource
	history   scoring.HistoryRepository
	predictor *services.Predictor
	now       func() time.Time
}

// NewPredictTrendHandler creates a new trend prediction handler.
func NewPredictTrendHandler(
	directory workforce.Directory,
	tasks workforce.TaskSource,
	history scoring.HistoryRepository,
	predictor *services.Predictor,
) *PredictTrendHandler {
	return &PredictTrendHandler{
		directory: directory,
		tasks:     tasks,
		history:   history,
		predictor: predictor,
		now:       time.Now,
	}
}

// Handle predicts the employee's performance trend. Returns nil (not an
// error) when the employee does not exist.
func (h *PredictTrendHandler) Handle(ctx context.Context, query PredictTrendQuery) (*domain.TrendResult, error) {
	if _, err := h.directory.GetEmployee(ctx, query.OrganizationID, query.EmployeeID); err != nil {
		if errors.Is(err, workforce.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	since := h.now().UTC().Add(-h.predictor.Config().Window)

	series, err := h.history.Series(ctx, query.OrganizationID, query.EmployeeID, since)
	if err != nil {
		return nil, err
	}

	stats, err := h.tasks.WindowStats(ctx, query.OrganizationID, query.EmployeeID, since)
	if err != nil {
		return nil, err
	}

	return h.predictor.Predict(query.EmployeeID, series, stats), nil
}
