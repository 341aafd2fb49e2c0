package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) RequiredSkills(ctx context.Context, role string) ([]string, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog entry takes precedence over builtin patterns", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("RequiredSkills", mock.Anything, "Frontend Developer").
			Return([]string{"Svelte", "WebAssembly"}, nil)

		skills, err := NewResolver(catalog).Resolve(ctx, "Frontend Developer")

		require.NoError(t, err)
		assert.Equal(t, []string{"Svelte", "WebAssembly"}, skills)
	})

	t.Run("unknown role in catalog falls back to builtin patterns", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("RequiredSkills", mock.Anything, "Frontend Developer").
			Return(nil, ErrRoleNotFound)

		skills, err := NewResolver(catalog).Resolve(ctx, "Frontend Developer")

		require.NoError(t, err)
		assert.Equal(t, []string{"JavaScript", "HTML", "CSS", "React", "TypeScript"}, skills)
	})

	t.Run("catalog store failure propagates", func(t *testing.T) {
		catalog := new(mockCatalog)
		catalog.On("RequiredSkills", mock.Anything, "Backend Developer").
			Return(nil, errors.New("connection reset"))

		_, err := NewResolver(catalog).Resolve(ctx, "Backend Developer")

		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("nil catalog resolves from builtin patterns", func(t *testing.T) {
		skills, err := NewResolver(nil).Resolve(ctx, "DevOps Engineer")

		require.NoError(t, err)
		assert.Equal(t, []string{"Docker", "Kubernetes", "CI/CD", "Terraform", "Linux"}, skills)
	})

	t.Run("pattern matching tolerates qualifiers around the role", func(t *testing.T) {
		skills, err := NewResolver(nil).Resolve(ctx, "Senior Backend Developer")

		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "REST APIs", "Docker", "PostgreSQL"}, skills)
	})

	t.Run("pattern matching is case-insensitive", func(t *testing.T) {
		skills, err := NewResolver(nil).Resolve(ctx, "DATA ANALYST")

		require.NoError(t, err)
		assert.Equal(t, []string{"SQL", "Python", "Statistics", "Data Visualization"}, skills)
	})

	t.Run("unrecognized role gets the generic set", func(t *testing.T) {
		skills, err := NewResolver(nil).Resolve(ctx, "Chief Vibes Officer")

		require.NoError(t, err)
		assert.Equal(t, []string{"Communication", "Problem Solving", "Teamwork"}, skills)
	})

	t.Run("blank role gets the generic set", func(t *testing.T) {
		skills, err := NewResolver(nil).Resolve(ctx, "   ")

		require.NoError(t, err)
		assert.Equal(t, []string{"Communication", "Problem Solving", "Teamwork"}, skills)
	})
}
