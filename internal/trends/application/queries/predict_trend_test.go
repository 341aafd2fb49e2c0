package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	scoring "github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/trends/application/services"
	"github.com/luminahr/talentscope/internal/trends/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) GetEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*workforce.Employee, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Employee), args.Error(1)
}

func (m *mockDirectory) ListActiveEmployees(ctx context.Context, orgID uuid.UUID, department string) ([]*workforce.Employee, error) {
	args := m.Called(ctx, orgID, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workforce.Employee), args.Error(1)
}

type mockTaskSource struct {
	mock.Mock
}

func (m *mockTaskSource) ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]workforce.Task, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workforce.Task), args.Error(1)
}

func (m *mockTaskSource) CountActive(ctx context.Context, orgID, employeeID uuid.UUID) (int, error) {
	args := m.Called(ctx, orgID, employeeID)
	return args.Int(0), args.Error(1)
}

func (m *mockTaskSource) CountCompletedSince(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (int, error) {
	args := m.Called(ctx, orgID, employeeID, since)
	return args.Int(0), args.Error(1)
}

func (m *mockTaskSource) WindowStats(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (workforce.TaskStats, error) {
	args := m.Called(ctx, orgID, employeeID, since)
	return args.Get(0).(workforce.TaskStats), args.Error(1)
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Append(ctx context.Context, score *scoring.ProductivityScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *mockHistory) Latest(ctx context.Context, orgID, employeeID uuid.UUID) (*scoring.ProductivityScore, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scoring.ProductivityScore), args.Error(1)
}

func (m *mockHistory) LatestPerEmployee(ctx context.Context, orgID uuid.UUID) ([]scoring.ScoreWithEmployee, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scoring.ScoreWithEmployee), args.Error(1)
}

func (m *mockHistory) Series(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) ([]*scoring.ProductivityScore, error) {
	args := m.Called(ctx, orgID, employeeID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scoring.ProductivityScore), args.Error(1)
}

// dailySeries builds ascending daily scores ending shortly before now.
func dailySeries(now time.Time, scores ...float64) []*scoring.ProductivityScore {
	out := make([]*scoring.ProductivityScore, len(scores))
	for i, s := range scores {
		out[i] = &scoring.ProductivityScore{
			ID:           uuid.New(),
			Score:        s,
			CalculatedAt: now.AddDate(0, 0, i-len(scores)),
		}
	}
	return out
}

func TestPredictTrendHandler_Handle(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	query := PredictTrendQuery{OrganizationID: orgID, EmployeeID: employeeID}

	newHandler := func(directory *mockDirectory, tasks *mockTaskSource, history *mockHistory) *PredictTrendHandler {
		h := NewPredictTrendHandler(directory, tasks, history, services.NewPredictor(services.DefaultPredictorConfig()))
		h.now = func() time.Time { return now }
		return h
	}

	t.Run("predicts from windowed history and task stats", func(t *testing.T) {
		directory := new(mockDirectory)
		tasks := new(mockTaskSource)
		history := new(mockHistory)
		since := now.UTC().Add(-30 * 24 * time.Hour)

		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(&workforce.Employee{ID: employeeID, Active: true}, nil)
		history.On("Series", mock.Anything, orgID, employeeID, since).
			Return(dailySeries(now, 50, 55, 60, 65), nil)
		tasks.On("WindowStats", mock.Anything, orgID, employeeID, since).
			Return(workforce.TaskStats{Total: 10, Completed: 9}, nil)

		result, err := newHandler(directory, tasks, history).Handle(context.Background(), query)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, employeeID, result.EmployeeID)
		assert.Equal(t, domain.TrendImproving, result.Trend)
		assert.Equal(t, 4, result.DataPointCount)
	})

	t.Run("missing employee yields nil without error", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(nil, workforce.ErrEmployeeNotFound)

		result, err := newHandler(directory, new(mockTaskSource), new(mockHistory)).
			Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("history failure propagates", func(t *testing.T) {
		directory := new(mockDirectory)
		history := new(mockHistory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(&workforce.Employee{ID: employeeID, Active: true}, nil)
		history.On("Series", mock.Anything, orgID, employeeID, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := newHandler(directory, new(mockTaskSource), history).
			Handle(context.Background(), query)

		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("stats failure propagates", func(t *testing.T) {
		directory := new(mockDirectory)
		tasks := new(mockTaskSource)
		history := new(mockHistory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(&workforce.Employee{ID: employeeID, Active: true}, nil)
		history.On("Series", mock.Anything, orgID, employeeID, mock.Anything).
			Return([]*scoring.ProductivityScore{}, nil)
		tasks.On("WindowStats", mock.Anything, orgID, employeeID, mock.Anything).
			Return(workforce.TaskStats{}, errors.New("store unavailable"))

		_, err := newHandler(directory, tasks, history).Handle(context.Background(), query)

		assert.ErrorContains(t, err, "store unavailable")
	})
}
