// Package application contains the application layer for the
// assignment-recommendation bounded context.
package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/assignment/application/queries"
	"github.com/luminahr/talentscope/internal/assignment/application/services"
	"github.com/luminahr/talentscope/internal/assignment/domain"
	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Service provides a facade over all assignment handlers.
type Service struct {
	recommendHandler *queries.RecommendEmployeesHandler
	validateHandler  *queries.ValidateEmployeeHandler

	metrics observability.Metrics
}

// Config bundles the service dependencies.
type Config struct {
	Directory workforce.Directory
	Tasks     workforce.TaskSource
	History   scoring.HistoryRepository
	Engine    services.SuitabilityEngineConfig
	Workers   int
	Metrics   observability.Metrics
}

// NewService creates a new assignment service.
func NewService(cfg Config) *Service {
	engine := services.NewSuitabilityEngine(cfg.Engine)
	recommend := queries.NewRecommendEmployeesHandler(cfg.Directory, cfg.Tasks, cfg.History, engine, cfg.Workers)

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	return &Service{
		recommendHandler: recommend,
		validateHandler:  queries.NewValidateEmployeeHandler(recommend),
		metrics:          metrics,
	}
}

// RecommendEmployees returns up to five candidates ranked by suitability.
func (s *Service) RecommendEmployees(ctx context.Context, orgID uuid.UUID, req domain.TaskRequirements) ([]*domain.AssignmentCandidate, error) {
	s.metrics.Counter(observability.MetricRecommendations, 1)
	return s.recommendHandler.Handle(ctx, queries.RecommendEmployeesQuery{OrganizationID: orgID, Requirements: req})
}

// ValidateEmployee checks whether a specific employee fits a task.
func (s *Service) ValidateEmployee(ctx context.Context, orgID, employeeID uuid.UUID, req domain.TaskRequirements) (*domain.ValidationResult, error) {
	return s.validateHandler.Handle(ctx, queries.ValidateEmployeeQuery{OrganizationID: orgID, EmployeeID: employeeID, Requirements: req})
}
