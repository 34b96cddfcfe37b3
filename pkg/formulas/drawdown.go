package formulas

// MaxDrawdown calculates the maximum peak-to-trough decline of a price series.
//
// The cumulative growth curve is built by compounding per-step returns with
// the curve starting at 1.0 at the first price (the first gap contributes no
// return). Drawdown at each point is growth/peak - 1 against the running
// peak; the result is the minimum (most negative) drawdown over the whole
// curve, so it is always <= 0. This runs in price space, not return space -
// it captures loss in actual equity value, not return dispersion.
//
// Nil only for a zero-length series. A strictly increasing series yields 0;
// a strictly decreasing one yields price[last]/price[first] - 1.
func MaxDrawdown(prices []float64) *float64 {
	if len(prices) == 0 {
		return nil
	}

	growth := 1.0
	peak := 1.0
	maxDrawdown := 0.0

	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			growth *= prices[i] / prices[i-1]
		}
		if growth > peak {
			peak = growth
		}

		drawdown := growth/peak - 1
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return &maxDrawdown
}
