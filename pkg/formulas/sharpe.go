package formulas

import "math"

// SharpeRatio calculates the annualized Sharpe ratio from daily returns.
//
// The annual risk-free rate is converted to a daily rate (rf/252), subtracted
// from each return, and the ratio is:
//
//	mean(excess) x 252 / (popstd(excess) x sqrt(252))
//
// Nil if the series is empty or the denominator is zero/undefined (e.g. a
// single observation, or zero variance).
func SharpeRatio(dailyReturns []float64, riskFreeRate float64) *float64 {
	if len(dailyReturns) == 0 {
		return nil
	}

	excess := excessReturns(dailyReturns, riskFreeRate)

	denom := PopStdDev(excess) * math.Sqrt(TradingDays)
	if denom == 0 || math.IsNaN(denom) {
		return nil
	}

	sharpe := Mean(excess) * TradingDays / denom
	return &sharpe
}

// SortinoRatio calculates the annualized Sortino ratio from daily returns.
// Same excess-return construction as SharpeRatio, but the denominator is the
// population standard deviation of only the negative excess observations
// (downside deviation), annualized the same way. Nil if the series is empty
// or there are no negative excess observations (downside risk undefined).
func SortinoRatio(dailyReturns []float64, riskFreeRate float64) *float64 {
	if len(dailyReturns) == 0 {
		return nil
	}

	excess := excessReturns(dailyReturns, riskFreeRate)

	var downside []float64
	for _, e := range excess {
		if e < 0 {
			downside = append(downside, e)
		}
	}
	if len(downside) == 0 {
		return nil
	}

	denom := PopStdDev(downside) * math.Sqrt(TradingDays)
	if denom == 0 || math.IsNaN(denom) {
		return nil
	}

	sortino := Mean(excess) * TradingDays / denom
	return &sortino
}

// excessReturns subtracts the daily risk-free rate from each return.
func excessReturns(dailyReturns []float64, riskFreeRate float64) []float64 {
	rfDaily := riskFreeRate / TradingDays
	excess := make([]float64, len(dailyReturns))
	for i, r := range dailyReturns {
		excess[i] = r - rfDaily
	}
	return excess
}
