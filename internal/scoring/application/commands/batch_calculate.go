package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/observability"
)

// BatchCalculateCommand requests a score recalculation for every active
// employee of an organization.
type BatchCalculateCommand struct {
	OrganizationID uuid.UUID
}

// EmployeeFailure records one employee whose calculation failed.
type EmployeeFailure struct {
	EmployeeID uuid.UUID
	Err        error
}

// BatchResult reports the outcome of a batch recalculation. A batch is
// best-effort: individual failures are collected, not propagated.
type BatchResult struct {
	Scores   []*domain.ProductivityScore
	Failures []EmployeeFailure
}

// Succeeded returns the number of employees scored.
func (r *BatchResult) Succeeded() int { return len(r.Scores) }

// BatchCalculateHandler fans score calculations out over a bounded worker
// pool. Per-employee calculations are independent; each appends only its own
// history row, so they are safe to run concurrently.
type BatchCalculateHandler struct {
	directory workforce.Directory
	calculate *CalculateScoreHandler
	workers   int
	metrics   observability.Metrics
	logger    *slog.Logger
}

// NewBatchCalculateHandler creates a new batch handler. workers bounds the
// concurrent calculations; values below 1 mean sequential.
func NewBatchCalculateHandler(
	directory workforce.Directory,
	calculate *CalculateScoreHandler,
	workers int,
	metrics observability.Metrics,
	logger *slog.Logger,
) *BatchCalculateHandler {
	if workers < 1 {
		workers = 1
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchCalculateHandler{
		directory: directory,
		calculate: calculate,
		workers:   workers,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle recalculates scores for all active employees of the organization.
// A failure for one employee is recorded and skipped; the batch completes for
// all others.
func (h *BatchCalculateHandler) Handle(ctx context.Context, cmd BatchCalculateCommand) (*BatchResult, error) {
	employees, err := h.directory.ListActiveEmployees(ctx, cmd.OrganizationID, "")
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for _, emp := range employees {
		g.Go(func() error {
			score, err := h.calculate.Handle(gctx, CalculateScoreCommand{
				OrganizationID: cmd.OrganizationID,
				EmployeeID:     emp.ID,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, EmployeeFailure{EmployeeID: emp.ID, Err: err})
				h.logger.Error("batch score calculation failed",
					"organization_id", cmd.OrganizationID,
					"employee_id", emp.ID,
					"error", err,
				)
				return nil // isolate per-employee failures
			}
			result.Scores = append(result.Scores, score)
			return nil
		})
	}
	// Goroutines never return errors; Wait only observes context cancellation.
	_ = g.Wait()

	h.metrics.Counter(observability.MetricBatchRuns, 1)
	h.metrics.Counter(observability.MetricScoresCalculated, int64(result.Succeeded()))
	h.metrics.Counter(observability.MetricBatchFailures, int64(len(result.Failures)))

	h.logger.Info("batch score calculation finished",
		"organization_id", cmd.OrganizationID,
		"succeeded", result.Succeeded(),
		"failed", len(result.Failures),
	)

	return result, nil
}
