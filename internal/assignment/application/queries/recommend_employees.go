// Package queries contains the read operations of the assignment context.
package queries

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/luminahr/talentscope/internal/assignment/application/services"
	"github.com/luminahr/talentscope/internal/assignment/domain"
	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// MaxRecommendations caps how many candidates a recommendation returns.
const MaxRecommendations = 5

// availabilityWindow is how far back completions count toward availability.
const availabilityWindow = 7 * 24 * time.Hour

// RecommendEmployeesQuery requests ranked candidates for a task.
type RecommendEmployeesQuery struct {
	OrganizationID uuid.UUID
	Requirements   domain.TaskRequirements
}

// RecommendEmployeesHandler ranks active employees by task suitability.
type RecommendEmployeesHandler struct {
	directory workforce.Directory
	tasks     workforce.TaskSource
	history   scoring.HistoryRepository
	engine    *services.SuitabilityEngine
	workers   int
	now       func() time.Time
}

// NewRecommendEmployeesHandler creates a new recommendation handler. workers
// bounds the concurrent candidate evaluations; values below 1 mean
// sequential.
func NewRecommendEmployeesHandler(
	directory workforce.Directory,
	tasks workforce.TaskSource,
	history scoring.HistoryRepository,
	engine *services.SuitabilityEngine,
	workers int,
) *RecommendEmployeesHandler {
	if workers < 1 {
		workers = 1
	}
	return &RecommendEmployeesHandler{
		directory: directory,
		tasks:     tasks,
		history:   history,
		engine:    engine,
		workers:   workers,
		now:       time.Now,
	}
}

// Handle evaluates every active employee, optionally filtered by the
// requirements' department, and returns the top candidates by suitability
// score descending.
func (h *RecommendEmployeesHandler) Handle(ctx context.Context, query RecommendEmployeesQuery) ([]*domain.AssignmentCandidate, error) {
	candidates, err := h.evaluateAll(ctx, query)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SuitabilityScore > candidates[j].SuitabilityScore
	})
	if len(candidates) > MaxRecommendations {
		candidates = candidates[:MaxRecommendations]
	}
	return candidates, nil
}

// EvaluateEmployee evaluates a single employee against the requirements.
// Returns nil when the employee is absent from the active pool.
func (h *RecommendEmployeesHandler) EvaluateEmployee(ctx context.Context, orgID, employeeID uuid.UUID, req domain.TaskRequirements) (*domain.AssignmentCandidate, error) {
	candidates, err := h.evaluateAll(ctx, RecommendEmployeesQuery{OrganizationID: orgID, Requirements: req})
	if err != nil {
		return nil, err
	}
	for _, candidate := range candidates {
		if candidate.EmployeeID == employeeID {
			return candidate, nil
		}
	}
	return nil, nil
}

func (h *RecommendEmployeesHandler) evaluateAll(ctx context.Context, query RecommendEmployeesQuery) ([]*domain.AssignmentCandidate, error) {
	employees, err := h.directory.ListActiveEmployees(ctx, query.OrganizationID, query.Requirements.Department)
	if err != nil {
		return nil, err
	}

	since := h.now().UTC().Add(-availabilityWindow)

	candidates := make([]*domain.AssignmentCandidate, 0, len(employees))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for _, emp := range employees {
		g.Go(func() error {
			signals, err := h.gatherSignals(gctx, query.OrganizationID, emp.ID, since)
			if err != nil {
				return err
			}
			candidate := h.engine.Evaluate(emp, query.Requirements, signals)
			mu.Lock()
			candidates = append(candidates, candidate)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (h *RecommendEmployeesHandler) gatherSignals(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (domain.CandidateSignals, error) {
	var signals domain.CandidateSignals

	active, err := h.tasks.CountActive(ctx, orgID, employeeID)
	if err != nil {
		return signals, err
	}
	signals.ActiveTasks = active

	completed, err := h.tasks.CountCompletedSince(ctx, orgID, employeeID, since)
	if err != nil {
		return signals, err
	}
	signals.RecentCompletions = completed

	latest, err := h.history.Latest(ctx, orgID, employeeID)
	if err != nil {
		return signals, err
	}
	if latest != nil {
		signals.Productivity = &latest.Score
	}
	return signals, nil
}
