package fundamentals

import (
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// NormalizeDecimal classifies a raw percent-like value and rescales it to a
// decimal fraction:
//
//	nil or NaN      -> nil (missing)
//	0 <= v <= 1     -> unchanged (already a decimal fraction)
//	1 < v <= 100    -> v / 100  (assumed percent-scale)
//	otherwise       -> unchanged (outside the heuristic range)
//
// The heuristic is idempotent on its fixed points but intentionally ambiguous
// at the boundary: a true decimal of 0.45 and a percent of 45 both map
// through the same rule. The thresholds are documented behavior - keep them
// exactly as stated rather than "improving" them.
func NormalizeDecimal(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	if 0 <= *v && *v <= 1 {
		return v
	}
	if 1 < *v && *v <= 100 {
		scaled := *v / 100
		return &scaled
	}
	return v
}

// Normalizer turns raw provider field bags into normalized records.
type Normalizer struct {
	log zerolog.Logger
}

// NewNormalizer creates a new fundamentals normalizer
func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{
		log: log.With().Str("component", "fundamentals").Logger(),
	}
}

// NormalizeAll normalizes raw fields for every instrument, keyed by the same
// identifiers. A field that cannot be classified for one instrument never
// blocks the others.
func (n *Normalizer) NormalizeAll(raw map[string]RawFields) map[string]Record {
	records := make(map[string]Record, len(raw))
	for symbol, fields := range raw {
		records[symbol] = n.Normalize(fields)
	}

	n.log.Debug().Int("instruments", len(records)).Msg("Normalized fundamentals")
	return records
}

// Normalize builds a single normalized record from raw provider fields.
func (n *Normalizer) Normalize(raw RawFields) Record {
	return Record{
		PE:              numeric(raw.TrailingPE),
		ForwardPE:       numeric(raw.ForwardPE),
		DebtToEquity:    numeric(raw.DebtToEquity),
		DividendYield:   resolveDividendYield(raw),
		NetProfitMargin: NormalizeDecimal(firstReported(raw.ProfitMargins, raw.NetMargins)),
		ExpenseRatio:    normalizeExpenseRatio(raw),
	}
}

// normalizeExpenseRatio surfaces the expense ratio only when it is
// meaningful: fund-type instruments always get the normalized reported field;
// for anything else it is surfaced only if a reported value exists - never
// defaulted or estimated.
func normalizeExpenseRatio(raw RawFields) *float64 {
	if isFundType(raw.QuoteType) {
		return NormalizeDecimal(raw.ExpenseRatio)
	}
	if numeric(raw.ExpenseRatio) == nil {
		return nil
	}
	return NormalizeDecimal(raw.ExpenseRatio)
}

func isFundType(quoteType string) bool {
	switch strings.ToUpper(strings.TrimSpace(quoteType)) {
	case QuoteTypeETF, QuoteTypeMutualFund:
		return true
	}
	return false
}

// numeric passes a reported value through, mapping NaN to missing.
func numeric(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	return v
}

// firstReported returns the first non-missing candidate.
func firstReported(candidates ...*float64) *float64 {
	for _, c := range candidates {
		if v := numeric(c); v != nil {
			return v
		}
	}
	return nil
}
