// Package domain contains the core types of the trend-prediction context.
package domain

// Point is one observation for the regression: X is elapsed days since the
// first observation, Y is the score.
type Point struct {
	X float64
	Y float64
}

// Regression holds an ordinary least-squares line fit.
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Fit computes the least-squares line over the points. R² is 1 − SS_res/SS_tot;
// when SS_tot is zero (a perfectly flat series) R² is defined as 0. Fit
// expects at least two points with distinct X values; callers enforce their
// own minimum sample size.
func Fit(points []Point) Regression {
	n := float64(len(points))
	if n < 2 {
		return Regression{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return Regression{Intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for _, p := range points {
		predicted := slope*p.X + intercept
		ssRes += (p.Y - predicted) * (p.Y - predicted)
		ssTot += (p.Y - meanY) * (p.Y - meanY)
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return Regression{Slope: slope, Intercept: intercept, RSquared: rSquared}
}
