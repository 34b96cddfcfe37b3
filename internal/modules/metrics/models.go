// Package metrics computes risk/return performance metrics for every
// instrument in a price matrix against an optional benchmark.
package metrics

// Record holds the computed metrics for one instrument. A nil field is the
// missing sentinel: the metric is mathematically undefined for the input
// data (insufficient observations, degenerate denominator, no date overlap
// with the benchmark). Missing is not an error - the record is always fully
// shaped so downstream consumers get a stable schema regardless of data
// quality.
type Record struct {
	AnnReturn     *float64 `json:"ann_return"`
	Sharpe        *float64 `json:"sharpe"`
	Sortino       *float64 `json:"sortino"`
	Volatility    *float64 `json:"volatility"`
	MaxDrawdown   *float64 `json:"max_drawdown"`
	TrackingError *float64 `json:"tracking_error"`
	Alpha         *float64 `json:"alpha"`
	Beta          *float64 `json:"beta"`
	R2            *float64 `json:"r_squared"`
}

// Columns is the fixed presentation order of the metric fields. Clients
// render tables in this order; it never varies with data quality.
var Columns = []string{
	"Ann. Return",
	"Sharpe",
	"Sortino",
	"Volatility",
	"Max Drawdown",
	"Tracking Error",
	"Alpha",
	"Beta",
	"R²",
}
