package queries

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luminahr/talentscope/internal/assignment/domain"
	workforce "github.com/luminahr/talentscope/internal/workforce/domain"
)

func TestValidateEmployeeHandler_Handle(t *testing.T) {
	orgID := uuid.New()
	employeeID := uuid.New()
	requirements := domain.TaskRequirements{RequiredSkills: []string{"Go", "SQL"}}

	newValidator := func(directory *mockDirectory, tasks *mockTaskSource, history *mockHistory) *ValidateEmployeeHandler {
		return NewValidateEmployeeHandler(newRecommendHandler(directory, tasks, history))
	}

	t.Run("a strong candidate is suitable without warnings", func(t *testing.T) {
		directory := new(mockDirectory)
		tasks := new(mockTaskSource)
		history := new(mockHistory)

		emp := &workforce.Employee{ID: employeeID, Skills: []string{"Go", "SQL"}, Active: true}
		directory.On("ListActiveEmployees", mock.Anything, orgID, "").
			Return([]*workforce.Employee{emp}, nil)
		primeSignals(tasks, history, orgID, employeeID, 2, 3, floatPtr(85))

		result, err := newValidator(directory, tasks, history).Handle(context.Background(), ValidateEmployeeQuery{
			OrganizationID: orgID,
			EmployeeID:     employeeID,
			Requirements:   requirements,
		})

		require.NoError(t, err)
		assert.True(t, result.Suitable)
		assert.GreaterOrEqual(t, result.Score, 50)
		assert.Empty(t, result.Warnings)
	})

	t.Run("weak factors raise warnings and block suitability", func(t *testing.T) {
		directory := new(mockDirectory)
		tasks := new(mockTaskSource)
		history := new(mockHistory)

		emp := &workforce.Employee{ID: employeeID, Skills: nil, Active: true}
		directory.On("ListActiveEmployees", mock.Anything, orgID, "").
			Return([]*workforce.Employee{emp}, nil)
		primeSignals(tasks, history, orgID, employeeID, 9, 0, floatPtr(30))

		result, err := newValidator(directory, tasks, history).Handle(context.Background(), ValidateEmployeeQuery{
			OrganizationID: orgID,
			EmployeeID:     employeeID,
			Requirements:   requirements,
		})

		require.NoError(t, err)
		assert.False(t, result.Suitable)
		require.Len(t, result.Warnings, 3)
		assert.Contains(t, result.Warnings[0], "skills match is only 0%")
		assert.Contains(t, result.Warnings[1], "heavy current workload of 9 active tasks")
		assert.Contains(t, result.Warnings[2], "low productivity score of 30")
	})

	t.Run("a decent score with one warning is still unsuitable", func(t *testing.T) {
		directory := new(mockDirectory)
		tasks := new(mockTaskSource)
		history := new(mockHistory)

		emp := &workforce.Employee{ID: employeeID, Skills: []string{"Go", "SQL"}, Active: true}
		directory.On("ListActiveEmployees", mock.Anything, orgID, "").
			Return([]*workforce.Employee{emp}, nil)
		primeSignals(tasks, history, orgID, employeeID, 8, 3, floatPtr(85))

		result, err := newValidator(directory, tasks, history).Handle(context.Background(), ValidateEmployeeQuery{
			OrganizationID: orgID,
			EmployeeID:     employeeID,
			Requirements:   requirements,
		})

		require.NoError(t, err)
		assert.False(t, result.Suitable)
		assert.GreaterOrEqual(t, result.Score, 50)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "heavy current workload")
	})

	t.Run("unknown employee is flagged rather than an error", func(t *testing.T) {
		directory := new(mockDirectory)
		directory.On("ListActiveEmployees", mock.Anything, orgID, "").
			Return([]*workforce.Employee{}, nil)

		result, err := newValidator(directory, new(mockTaskSource), new(mockHistory)).
			Handle(context.Background(), ValidateEmployeeQuery{
				OrganizationID: orgID,
				EmployeeID:     employeeID,
				Requirements:   requirements,
			})

		require.NoError(t, err)
		assert.False(t, result.Suitable)
		assert.Equal(t, []string{"employee not found or inactive"}, result.Warnings)
	})
}
