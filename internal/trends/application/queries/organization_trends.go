package queries

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/luminahr/talentscope/internal/trends/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// OrganizationTrendsQuery requests trend predictions for all active
// employees of an organization.
type OrganizationTrendsQuery struct {
	OrganizationID uuid.UUID
}

// OrganizationTrendsHandler fans per-employee predictions out over a bounded
// worker pool. Predictions only read from the store, so they are safe to run
// concurrently.
type OrganizationTrendsHandler struct {
	directory workforce.Directory
	predict   *PredictTrendHandler
	workers   int
	logger    *slog.Logger
}

// NewOrganizationTrendsHandler creates a new organization trends handler.
// workers bounds the concurrent predictions; values below 1 mean sequential.
func NewOrganizationTrendsHandler(
	directory workforce.Directory,
	predict *PredictTrendHandler,
	workers int,
	logger *slog.Logger,
) *OrganizationTrendsHandler {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrganizationTrendsHandler{
		directory: directory,
		predict:   predict,
		workers:   workers,
		logger:    logger,
	}
}

// Handle predicts trends for every active employee. Per-employee failures
// are logged and skipped; the remaining results are sorted declining-first,
// then by confidence descending.
func (h *OrganizationTrendsHandler) Handle(ctx context.Context, query OrganizationTrendsQuery) ([]*domain.TrendResult, error) {
	employees, err := h.directory.ListActiveEmployees(ctx, query.OrganizationID, "")
	if err != nil {
		return nil, err
	}

	results := make([]*domain.TrendResult, 0, len(employees))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for _, emp := range employees {
		g.Go(func() error {
			result, err := h.predict.Handle(gctx, PredictTrendQuery{
				OrganizationID: query.OrganizationID,
				EmployeeID:     emp.ID,
			})
			if err != nil {
				h.logger.Error("trend prediction failed",
					"organization_id", query.OrganizationID,
					"employee_id", emp.ID,
					"error", err,
				)
				return nil // isolate per-employee failures
			}
			if result == nil {
				return nil
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		iDeclining := results[i].Trend == domain.TrendDeclining
		jDeclining := results[j].Trend == domain.TrendDeclining
		if iDeclining != jDeclining {
			return iDeclining
		}
		return results[i].Confidence > results[j].Confidence
	})

	return results, nil
}
