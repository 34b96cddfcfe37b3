package formulas

import "math"

// TrackingError calculates the annualized volatility of active returns
// (asset - benchmark) from two already-aligned, equal-length daily return
// series: population std dev of the differences x sqrt(252). Nil if the
// aligned series are empty or of unequal length.
func TrackingError(assetReturns, benchReturns []float64) *float64 {
	if len(assetReturns) == 0 || len(assetReturns) != len(benchReturns) {
		return nil
	}

	active := make([]float64, len(assetReturns))
	for i := range assetReturns {
		active[i] = assetReturns[i] - benchReturns[i]
	}

	te := PopStdDev(active) * math.Sqrt(TradingDays)
	return &te
}

// RegressionStats holds the results of regressing asset excess returns on
// benchmark excess returns. Nil fields mean the statistic is undefined for
// the given input.
type RegressionStats struct {
	Beta  *float64
	Alpha *float64 // annualized intercept
	R2    *float64
}

// BetaAlphaR2 regresses asset excess returns on benchmark excess returns.
// Both series must already be aligned and of equal length; the same daily
// risk-free rate is subtracted from both so that all three statistics come
// from a single aligned excess-return pair - beta must never be computed
// from raw returns while R2 uses excess returns, or vice versa.
//
//	beta  = popcov(x, y) / popvar(x)    (nil if var(x) == 0)
//	alpha = (mean(y) - beta*mean(x)) x 252
//	R2    = correlation(x, y)^2         (nil if correlation undefined)
//
// Fewer than 2 aligned points leaves all three statistics nil.
func BetaAlphaR2(assetReturns, benchReturns []float64, riskFreeRate float64) RegressionStats {
	if len(assetReturns) < 2 || len(assetReturns) != len(benchReturns) {
		return RegressionStats{}
	}

	y := excessReturns(assetReturns, riskFreeRate)
	x := excessReturns(benchReturns, riskFreeRate)

	stats := RegressionStats{}

	varX := PopVariance(x)
	if varX != 0 {
		beta := PopCovariance(x, y) / varX
		alpha := (Mean(y) - beta*Mean(x)) * TradingDays
		stats.Beta = &beta
		stats.Alpha = &alpha
	}

	corr := Correlation(x, y)
	if !math.IsNaN(corr) {
		r2 := corr * corr
		stats.R2 = &r2
	}

	return stats
}
