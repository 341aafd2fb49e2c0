package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luminahr/talentscope/internal/skills/domain"
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

func TestEmployeeGapHandler_Handle(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	query := EmployeeGapQuery{OrganizationID: orgID, EmployeeID: employeeID}

	t.Run("reports missing role requirements", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).Return(&workforce.Employee{
			ID:     employeeID,
			Role:   "Frontend Developer",
			Skills: []string{"JavaScript", "SQL"},
		}, nil)
		handler := NewEmployeeGapHandler(directory, domain.NewResolver(nil))

		gap, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		require.NotNil(t, gap)
		assert.Equal(t, "Frontend Developer", gap.Role)
		assert.Len(t, gap.RequiredSkills, 5)
		require.Len(t, gap.MissingSkills, 4)
		assert.Equal(t, 80, gap.GapScore)

		missing := make([]string, 0, len(gap.MissingSkills))
		for _, entry := range gap.MissingSkills {
			missing = append(missing, entry.Skill)
		}
		assert.ElementsMatch(t, []string{"HTML", "CSS", "React", "TypeScript"}, missing)
	})

	t.Run("skill matching is case-insensitive", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).Return(&workforce.Employee{
			ID:     employeeID,
			Role:   "Frontend Developer",
			Skills: []string{"javascript", "html", "css", "react", "typescript"},
		}, nil)
		handler := NewEmployeeGapHandler(directory, domain.NewResolver(nil))

		gap, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Empty(t, gap.MissingSkills)
		assert.Equal(t, 0, gap.GapScore)
	})

	t.Run("missing employee yields nil without error", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(nil, workforce.ErrEmployeeNotFound)
		handler := NewEmployeeGapHandler(directory, domain.NewResolver(nil))

		gap, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Nil(t, gap)
	})

	t.Run("directory failure propagates", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("GetEmployee", mock.Anything, orgID, employeeID).
			Return(nil, errors.New("connection reset"))
		handler := NewEmployeeGapHandler(directory, domain.NewResolver(nil))

		_, err := handler.Handle(context.Background(), query)

		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("a broader skill set never widens the gap", func(t *testing.T) {
		narrow := &workforce.Employee{ID: employeeID, Role: "Backend Developer", Skills: []string{"Go"}}
		broad := &workforce.Employee{ID: employeeID, Role: "Backend Developer", Skills: []string{"Go", "SQL", "Docker"}}

		score := func(emp *workforce.Employee) int {
			directory := new(mockDirectory)
			directory.On("GetEmployee", mock.Anything, orgID, employeeID).Return(emp, nil)
			handler := NewEmployeeGapHandler(directory, domain.NewResolver(nil))

			gap, err := handler.Handle(context.Background(), query)
			require.NoError(t, err)
			return gap.GapScore
		}

		assert.LessOrEqual(t, score(broad), score(narrow))
	})
}
