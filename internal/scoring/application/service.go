// Package application contains the application layer for the scoring bounded
// context.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/application/commands"
	"github.com/luminahr/talentscope/internal/scoring/application/queries"
	"github.com/luminahr/talentscope/internal/scoring/application/services"
	"github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/eventbus"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Service provides a facade over all scoring handlers.
type Service struct {
	calculateHandler *commands.CalculateScoreHandler
	batchHandler     *commands.BatchCalculateHandler

	latestHandler *queries.GetLatestScoreHandler
	allHandler    *queries.GetAllScoresHandler

	fresh *services.FreshScoreProvider

	metrics observability.Metrics
}

// Config bundles the service dependencies.
type Config struct {
	Directory workforce.Directory
	Tasks     workforce.TaskSource
	History   domain.HistoryRepository
	Cache     domain.Cache // optional
	Publisher eventbus.Publisher
	Engine    services.ScoreEngineConfig
	Freshness time.Duration
	Workers   int
	Metrics   observability.Metrics
	Logger    *slog.Logger
}

// NewService creates a new scoring service.
func NewService(cfg Config) *Service {
	engine := services.NewScoreEngine(cfg.Engine)
	calculate := commands.NewCalculateScoreHandler(cfg.Tasks, cfg.History, engine, cfg.Publisher, cfg.Logger)

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	return &Service{
		metrics:          metrics,
		calculateHandler: calculate,
		batchHandler:     commands.NewBatchCalculateHandler(cfg.Directory, calculate, cfg.Workers, metrics, cfg.Logger),
		latestHandler:    queries.NewGetLatestScoreHandler(cfg.History),
		allHandler:       queries.NewGetAllScoresHandler(cfg.History),
		fresh:            services.NewFreshScoreProvider(cfg.History, cfg.Cache, calculate, cfg.Freshness, metrics, cfg.Logger),
	}
}

// CalculateScore computes and appends a new score record for one employee.
func (s *Service) CalculateScore(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	timer := observability.StartTimer("scoring.calculate").WithMetrics(s.metrics)
	score, err := s.calculateHandler.Handle(ctx, commands.CalculateScoreCommand{OrganizationID: orgID, EmployeeID: employeeID})
	timer.StopWithError(err)
	if err != nil {
		return nil, err
	}
	s.metrics.Timing(observability.MetricScoreDuration, timer.Elapsed())
	return score, nil
}

// BatchCalculateScores recalculates scores for all active employees.
func (s *Service) BatchCalculateScores(ctx context.Context, orgID uuid.UUID) (*commands.BatchResult, error) {
	return s.batchHandler.Handle(ctx, commands.BatchCalculateCommand{OrganizationID: orgID})
}

// GetLatestScore returns the most recent record, or nil if never scored.
func (s *Service) GetLatestScore(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	return s.latestHandler.Handle(ctx, queries.GetLatestScoreQuery{OrganizationID: orgID, EmployeeID: employeeID})
}

// GetAllScores returns each employee's latest record with identity.
func (s *Service) GetAllScores(ctx context.Context, orgID uuid.UUID) ([]domain.ScoreWithEmployee, error) {
	return s.allHandler.Handle(ctx, queries.GetAllScoresQuery{OrganizationID: orgID})
}

// GetFreshScore returns the latest record no older than the freshness
// threshold, recalculating if needed.
func (s *Service) GetFreshScore(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	return s.fresh.Get(ctx, orgID, employeeID)
}
