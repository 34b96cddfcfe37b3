package fundamentals

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// ttmPaymentFallback is how many payments to sum when less than a year of
// dividend history exists (quarterly payers make 4 a year's worth).
const ttmPaymentFallback = 4

// resolveDividendYield resolves the dividend yield from candidate fields in
// priority order, falling back to a trailing-twelve-month estimate from the
// dividends history.
//
// Yields cluster in a narrow band, so the classification is stricter than
// NormalizeDecimal. For each numeric candidate v:
//
//	v >= 1.0        -> percent-scale, v / 100
//	0.2 < v < 1.0   -> ambiguous but yields above 20% are not plausible as
//	                   decimals for ordinary equities/funds, so v / 100
//	0 <= v <= 0.2   -> already a decimal fraction
//	otherwise       -> unresolved, try the next candidate
func resolveDividendYield(raw RawFields) *float64 {
	candidates := []*float64{raw.DividendYield, raw.TrailingAnnualDividendYield}

	for _, c := range candidates {
		v := numeric(c)
		if v == nil {
			continue
		}
		switch {
		case *v >= 1.0:
			scaled := *v / 100
			return &scaled
		case 0.2 < *v && *v < 1.0:
			scaled := *v / 100
			return &scaled
		case 0 <= *v && *v <= 0.2:
			return v
		}
	}

	return trailingYieldFromHistory(raw.Dividends, raw.CurrentPrice)
}

// trailingYieldFromHistory estimates the yield as the sum of per-share
// dividend payments over the trailing twelve months divided by the current
// (or approximate) price. With less than a year of history the last
// ttmPaymentFallback payments stand in for a full year. Nil without a
// positive price or when the trailing sum is zero.
func trailingYieldFromHistory(payments []DividendPayment, price *float64) *float64 {
	if len(payments) == 0 || price == nil || *price <= 0 {
		return nil
	}

	dated := make([]DividendPayment, 0, len(payments))
	for _, p := range payments {
		if _, err := time.Parse(dateLayout, p.Date); err == nil {
			dated = append(dated, p)
		}
	}
	if len(dated) == 0 {
		return nil
	}

	sort.Slice(dated, func(i, j int) bool { return dated[i].Date < dated[j].Date })

	latest, _ := time.Parse(dateLayout, dated[len(dated)-1].Date)
	earliest, _ := time.Parse(dateLayout, dated[0].Date)
	cutoff := latest.AddDate(0, 0, -365)

	var sum float64
	if earliest.After(cutoff) {
		// Less than a year of history: sum the most recent payments instead.
		start := len(dated) - ttmPaymentFallback
		if start < 0 {
			start = 0
		}
		for _, p := range dated[start:] {
			sum += p.Amount
		}
	} else {
		for _, p := range dated {
			d, _ := time.Parse(dateLayout, p.Date)
			if !d.Before(cutoff) {
				sum += p.Amount
			}
		}
	}

	if sum == 0 {
		return nil
	}

	yield := sum / *price
	return &yield
}
