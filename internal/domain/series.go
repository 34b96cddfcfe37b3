// Package domain holds the pure value types shared across modules.
// Everything here is computed fresh per invocation and owned by the caller;
// there is no mutable shared state.
package domain

// PricePoint is a single closing-price observation. Dates use the ISO
// "2006-01-02" form, which sorts lexicographically in date order.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// PriceSeries is an ordered, date-indexed sequence of positive prices for
// one instrument. Dates are strictly ascending and unique; non-trading days
// are absent, not zero-filled.
type PriceSeries []PricePoint

// ReturnPoint is a single fractional simple return, dated at the later of
// the two prices it was derived from.
type ReturnPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ReturnSeries is a date-indexed sequence of fractional simple returns.
type ReturnSeries []ReturnPoint

// PriceMatrix maps an instrument identifier to its price series. One
// designated identifier may be the benchmark.
type PriceMatrix map[string]PriceSeries

// Closes returns the raw closing prices in series order.
func (p PriceSeries) Closes() []float64 {
	closes := make([]float64, len(p))
	for i, pt := range p {
		closes[i] = pt.Close
	}
	return closes
}

// Returns derives the simple-return series: return[i] = price[i]/price[i-1] - 1.
// The first price has no corresponding return. Empty or single-point input
// yields an empty series.
func (p PriceSeries) Returns() ReturnSeries {
	if len(p) < 2 {
		return ReturnSeries{}
	}

	returns := make(ReturnSeries, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		if p[i-1].Close == 0 {
			continue
		}
		returns = append(returns, ReturnPoint{
			Date:  p[i].Date,
			Value: p[i].Close/p[i-1].Close - 1,
		})
	}
	return returns
}

// Values returns the raw return values in series order.
func (r ReturnSeries) Values() []float64 {
	values := make([]float64, len(r))
	for i, pt := range r {
		values[i] = pt.Value
	}
	return values
}

// AlignReturns inner-joins two return series on date and returns the aligned
// value slices in matching order. Dates present in only one series are
// dropped - never forward-filled or interpolated. Both outputs are empty when
// the series share no dates.
func AlignReturns(a, b ReturnSeries) (aVals, bVals []float64) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}

	byDate := make(map[string]float64, len(b))
	for _, pt := range b {
		byDate[pt.Date] = pt.Value
	}

	for _, pt := range a {
		if v, ok := byDate[pt.Date]; ok {
			aVals = append(aVals, pt.Value)
			bVals = append(bVals, v)
		}
	}
	return aVals, bVals
}
