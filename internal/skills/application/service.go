// Package application contains the application layer for the skill-gap
// bounded context.
package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/skills/application/queries"
	"github.com/luminahr/talentscope/internal/skills/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Service provides a facade over all skill-gap handlers.
type Service struct {
	employeeHandler        *queries.EmployeeGapHandler
	organizationHandler    *queries.OrganizationGapsHandler
	recommendationsHandler *queries.RecommendationsHandler

	metrics observability.Metrics
}

// Config bundles the service dependencies.
type Config struct {
	Directory workforce.Directory
	Catalog   domain.Catalog // optional
	Metrics   observability.Metrics
}

// NewService creates a new skill-gap service.
func NewService(cfg Config) *Service {
	resolver := domain.NewResolver(cfg.Catalog)
	employee := queries.NewEmployeeGapHandler(cfg.Directory, resolver)

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	return &Service{
		employeeHandler:        employee,
		organizationHandler:    queries.NewOrganizationGapsHandler(cfg.Directory, resolver),
		recommendationsHandler: queries.NewRecommendationsHandler(employee),
		metrics:                metrics,
	}
}

// AnalyzeEmployee returns the skill-gap report for one employee, or nil if
// the employee does not exist.
func (s *Service) AnalyzeEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.EmployeeSkillGap, error) {
	s.metrics.Counter(observability.MetricGapAnalyses, 1)
	return s.employeeHandler.Handle(ctx, queries.EmployeeGapQuery{OrganizationID: orgID, EmployeeID: employeeID})
}

// AnalyzeOrganization aggregates missing skills across all active employees.
func (s *Service) AnalyzeOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.OrganizationSkillGap, error) {
	s.metrics.Counter(observability.MetricGapAnalyses, 1)
	return s.organizationHandler.Handle(ctx, queries.OrganizationGapsQuery{OrganizationID: orgID})
}

// GetRecommendations returns development guidance for one employee, or nil
// if the employee does not exist.
func (s *Service) GetRecommendations(ctx context.Context, orgID, employeeID uuid.UUID) (*queries.RecommendationsResult, error) {
	return s.recommendationsHandler.Handle(ctx, queries.RecommendationsQuery{OrganizationID: orgID, EmployeeID: employeeID})
}
