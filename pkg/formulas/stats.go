// Package formulas provides pure statistical calculators for risk/return
// analysis. All functions operate on plain float64 slices; callers are
// responsible for date alignment. Calculators that can be undefined for a
// given input return a nil *float64 rather than an error - a nil result is
// the "missing" sentinel, not a failure.
package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the assumed number of trading days per year, used to scale
// daily statistics to annual ones. It is applied uniformly everywhere a
// per-period quantity is annualized.
const TradingDays = 252

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// PopStdDev calculates the population standard deviation (divisor N, not N-1).
// All volatility-based metrics in this package use the population convention
// so that Sharpe, Sortino and Volatility stay numerically consistent with
// each other for the same input.
func PopStdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopStdDev(data, nil)
}

// PopVariance calculates the population variance of a slice of float64 values
func PopVariance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopVariance(data, nil)
}

// Correlation calculates the Pearson correlation coefficient between two
// equal-length datasets. Returns NaN when either series has zero variance.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// PopCovariance calculates the population covariance between two equal-length
// datasets.
func PopCovariance(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	// gonum's Covariance uses the sample (N-1) divisor; rescale to population.
	n := float64(len(x))
	return stat.Covariance(x, y, nil) * (n - 1) / n
}
