package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Calculator is the slice of the calculate-score command the freshness policy
// needs. Implemented by commands.CalculateScoreHandler.
type Calculator interface {
	Recalculate(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error)
}

// FreshScoreProvider centralizes the recompute-if-stale policy around the
// latest score. Callers get a record no older than the configured threshold;
// the cache is best-effort and the history store remains the source of truth.
type FreshScoreProvider struct {
	history    domain.HistoryRepository
	cache      domain.Cache
	calculator Calculator
	threshold  time.Duration
	metrics    observability.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewFreshScoreProvider creates a provider with the given freshness threshold.
// cache may be nil.
func NewFreshScoreProvider(
	history domain.HistoryRepository,
	cache domain.Cache,
	calculator Calculator,
	threshold time.Duration,
	metrics observability.Metrics,
	logger *slog.Logger,
) *FreshScoreProvider {
	if threshold <= 0 {
		threshold = time.Hour
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FreshScoreProvider{
		history:    history,
		cache:      cache,
		calculator: calculator,
		threshold:  threshold,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Get returns the employee's latest score, recalculating when the stored
// record is missing or older than the freshness threshold.
func (p *FreshScoreProvider) Get(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	now := p.now()

	if cached := p.cacheGet(ctx, orgID, employeeID); cached != nil && !cached.IsStale(p.threshold, now) {
		p.metrics.Counter(observability.MetricScoreCacheHits, 1)
		return cached, nil
	}
	p.metrics.Counter(observability.MetricScoreCacheMisses, 1)

	latest, err := p.history.Latest(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	if latest != nil && !latest.IsStale(p.threshold, now) {
		p.cacheSet(ctx, latest)
		return latest, nil
	}

	score, err := p.calculator.Recalculate(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	p.cacheSet(ctx, score)
	return score, nil
}

func (p *FreshScoreProvider) cacheGet(ctx context.Context, orgID, employeeID uuid.UUID) *domain.ProductivityScore {
	if p.cache == nil {
		return nil
	}
	score, err := p.cache.Get(ctx, orgID, employeeID)
	if err != nil {
		p.logger.Debug("score cache read failed", "employee_id", employeeID, "error", err)
		return nil
	}
	return score
}

func (p *FreshScoreProvider) cacheSet(ctx context.Context, score *domain.ProductivityScore) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, score, p.threshold); err != nil {
		p.logger.Debug("score cache write failed", "employee_id", score.EmployeeID, "error", err)
	}
}
