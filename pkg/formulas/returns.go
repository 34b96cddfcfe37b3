package formulas

import "math"

// Returns converts a price series to simple fractional returns.
// Returns[i] = Price[i+1]/Price[i] - 1. The first observation has no prior
// price and is dropped, not zero-filled. An empty or single-point input
// yields an empty slice.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = prices[i]/prices[i-1] - 1
		}
	}

	return returns
}

// AnnualizedReturn calculates the annualized return from daily returns:
// mean(returns) x 252. Nil if the series is empty.
func AnnualizedReturn(dailyReturns []float64) *float64 {
	if len(dailyReturns) == 0 {
		return nil
	}

	annualized := Mean(dailyReturns) * TradingDays
	return &annualized
}

// AnnualizedVolatility calculates annualized volatility from daily returns:
// population std dev x sqrt(252). Nil if the series is empty.
func AnnualizedVolatility(dailyReturns []float64) *float64 {
	if len(dailyReturns) == 0 {
		return nil
	}

	annualized := PopStdDev(dailyReturns) * math.Sqrt(TradingDays)
	return &annualized
}
