package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luminahr/talentscope/internal/scoring/application/services"
	"github.com/luminahr/talentscope/internal/scoring/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

// mockTaskSource is a mock implementation of workforce.TaskSource.
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

// mockHistoryRepo is a mock implementation of domain.HistoryRepository.
type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) Append(ctx context.Context, score *domain.ProductivityScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *mockHistoryRepo) Latest(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductivityScore), args.Error(1)
}

func (m *mockHistoryRepo) LatestPerEmployee(ctx context.Context, orgID uuid.UUID) ([]domain.ScoreWithEmployee, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoreWithEmployee), args.Error(1)
}

func (m *mockHistoryRepo) Series(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) ([]*domain.ProductivityScore, error) {
	args := m.Called(ctx, orgID, employeeID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProductivityScore), args.Error(1)
}

// mockPublisher is a mock implementation of eventbus.Publisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// mockDirectory is a mock implementation of workforce.Directory.
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

func newHandler(tasks *mockTaskSource, history *mockHistoryRepo, publisher *mockPublisher) *CalculateScoreHandler {
	engine := services.NewScoreEngine(services.DefaultScoreEngineConfig())
	return NewCalculateScoreHandler(tasks, history, engine, publisher, nil)
}

func TestCalculateScoreHandler_Handle(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	cmd := CalculateScoreCommand{OrganizationID: orgID, EmployeeID: employeeID}

	t.Run("appends a new record and publishes an event", func(t *testing.T) {
		tasks := new(mockTaskSource)
		history := new(mockHistoryRepo)
		publisher := new(mockPublisher)
		handler := newHandler(tasks, history, publisher)

		created := time.Now().Add(-48 * time.Hour)
		done := created.Add(12 * time.Hour)
		tasks.On("ListByEmployee", mock.Anything, orgID, employeeID).Return([]workforce.Task{
			{Status: workforce.StatusCompleted, Complexity: workforce.ComplexityHigh, CreatedAt: created, CompletedAt: &done},
		}, nil)
		history.On("Append", mock.Anything, mock.AnythingOfType("*domain.ProductivityScore")).Return(nil)
		publisher.On("Publish", mock.Anything, RoutingKeyScoreCalculated, mock.Anything).Return(nil)

		score, err := handler.Handle(context.Background(), cmd)

		require.NoError(t, err)
		require.NotNil(t, score)
		assert.Equal(t, 100.0, score.CompletionRate)
		history.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("employee with no tasks gets the baseline record", func(t *testing.T) {
		tasks := new(mockTaskSource)
		history := new(mockHistoryRepo)
		publisher := new(mockPublisher)
		handler := newHandler(tasks, history, publisher)

		tasks.On("ListByEmployee", mock.Anything, orgID, employeeID).Return([]workforce.Task{}, nil)
		history.On("Append", mock.Anything, mock.Anything).Return(nil)
		publisher.On("Publish", mock.Anything, RoutingKeyScoreCalculated, mock.Anything).Return(nil)

		score, err := handler.Handle(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, float64(domain.BaselineScore), score.Score)
	})

	t.Run("task query failure propagates", func(t *testing.T) {
		tasks := new(mockTaskSource)
		history := new(mockHistoryRepo)
		handler := newHandler(tasks, history, new(mockPublisher))

		tasks.On("ListByEmployee", mock.Anything, orgID, employeeID).Return(nil, errors.New("store unavailable"))

		_, err := handler.Handle(context.Background(), cmd)

		assert.ErrorContains(t, err, "store unavailable")
		history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("append failure propagates", func(t *testing.T) {
		tasks := new(mockTaskSource)
		history := new(mockHistoryRepo)
		publisher := new(mockPublisher)
		handler := newHandler(tasks, history, publisher)

		tasks.On("ListByEmployee", mock.Anything, orgID, employeeID).Return([]workforce.Task{}, nil)
		history.On("Append", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		_, err := handler.Handle(context.Background(), cmd)

		assert.ErrorContains(t, err, "write failed")
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("broker failure does not fail the calculation", func(t *testing.T) {
		tasks := new(mockTaskSource)
		history := new(mockHistoryRepo)
		publisher := new(mockPublisher)
		handler := newHandler(tasks, history, publisher)

		tasks.On("ListByEmployee", mock.Anything, orgID, employeeID).Return([]workforce.Task{}, nil)
		history.On("Append", mock.Anything, mock.Anything).Return(nil)
		publisher.On("Publish", mock.Anything, RoutingKeyScoreCalculated, mock.Anything).Return(errors.New("broker down"))

		score, err := handler.Handle(context.Background(), cmd)

		require.NoError(t, err)
		assert.NotNil(t, score)
	})
}
