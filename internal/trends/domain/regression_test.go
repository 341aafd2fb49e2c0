package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	t.Run("perfect upward line", func(t *testing.T) {
		fit := Fit([]Point{
			{X: 0, Y: 50},
			{X: 1, Y: 55},
			{X: 2, Y: 60},
			{X: 3, Y: 65},
		})

		assert.InDelta(t, 5.0, fit.Slope, 1e-9)
		assert.InDelta(t, 50.0, fit.Intercept, 1e-9)
		assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	})

	t.Run("perfect downward line", func(t *testing.T) {
		fit := Fit([]Point{
			{X: 0, Y: 90},
			{X: 2, Y: 80},
			{X: 4, Y: 70},
		})

		assert.InDelta(t, -5.0, fit.Slope, 1e-9)
		assert.InDelta(t, 90.0, fit.Intercept, 1e-9)
		assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	})

	t.Run("flat series has zero slope and zero r-squared", func(t *testing.T) {
		fit := Fit([]Point{
			{X: 0, Y: 70},
			{X: 1, Y: 70},
			{X: 2, Y: 70},
		})

		assert.Zero(t, fit.Slope)
		assert.InDelta(t, 70.0, fit.Intercept, 1e-9)
		assert.Zero(t, fit.RSquared)
	})

	t.Run("noisy series has an imperfect fit", func(t *testing.T) {
		fit := Fit([]Point{
			{X: 0, Y: 50},
			{X: 1, Y: 62},
			{X: 2, Y: 54},
			{X: 3, Y: 68},
		})

		assert.Greater(t, fit.Slope, 0.0)
		assert.Greater(t, fit.RSquared, 0.0)
		assert.Less(t, fit.RSquared, 1.0)
	})

	t.Run("identical x values degrade to the mean", func(t *testing.T) {
		fit := Fit([]Point{
			{X: 2, Y: 40},
			{X: 2, Y: 60},
		})

		assert.Zero(t, fit.Slope)
		assert.InDelta(t, 50.0, fit.Intercept, 1e-9)
		assert.Zero(t, fit.RSquared)
	})

	t.Run("fewer than two points yields the zero fit", func(t *testing.T) {
		assert.Equal(t, Regression{}, Fit(nil))
		assert.Equal(t, Regression{}, Fit([]Point{{X: 0, Y: 42}}))
	})
}
