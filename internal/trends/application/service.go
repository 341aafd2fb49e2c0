// Package application contains the application layer for the
// trend-prediction bounded context.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/trends/application/queries"
	"github.com/luminahr/talentscope/internal/trends/application/services"
	"github.com/luminahr/talentscope/internal/trends/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Service provides a facade over all trend-prediction handlers.
type Service struct {
	predictHandler      *queries.PredictTrendHandler
	organizationHandler *queries.OrganizationTrendsHandler
	atRiskHandler       *queries.AtRiskHandler

	metrics observability.Metrics
}

// Config bundles the service dependencies.
type Config struct {
	Directory workforce.Directory
	Tasks     workforce.TaskSource
	History   scoring.HistoryRepository
	Predictor services.PredictorConfig
	Workers   int
	Metrics   observability.Metrics
	Logger    *slog.Logger
}

// NewService creates a new trend-prediction service.
func NewService(cfg Config) *Service {
	predictor := services.NewPredictor(cfg.Predictor)
	predict := queries.NewPredictTrendHandler(cfg.Directory, cfg.Tasks, cfg.History, predictor)
	organization := queries.NewOrganizationTrendsHandler(cfg.Directory, predict, cfg.Workers, cfg.Logger)

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	return &Service{
		predictHandler:      predict,
		organizationHandler: organization,
		atRiskHandler:       queries.NewAtRiskHandler(organization),
		metrics:             metrics,
	}
}

// PredictTrend predicts one employee's performance trend, or returns nil if
// the employee does not exist.
func (s *Service) PredictTrend(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.TrendResult, error) {
	s.metrics.Counter(observability.MetricTrendPredictions, 1)
	return s.predictHandler.Handle(ctx, queries.PredictTrendQuery{OrganizationID: orgID, EmployeeID: employeeID})
}

// PredictOrganizationTrends predicts trends for all active employees,
// declining trends first.
func (s *Service) PredictOrganizationTrends(ctx context.Context, orgID uuid.UUID) ([]*domain.TrendResult, error) {
	return s.organizationHandler.Handle(ctx, queries.OrganizationTrendsQuery{OrganizationID: orgID})
}

// GetEmployeesAtRisk returns employees with a confidently declining trend.
func (s *Service) GetEmployeesAtRisk(ctx context.Context, orgID uuid.UUID) ([]*domain.TrendResult, error) {
	return s.atRiskHandler.Handle(ctx, queries.AtRiskQuery{OrganizationID: orgID})
}
