// Package fundamentals normalizes heterogeneous provider-reported
// fundamentals fields into a consistent decimal-fraction convention
// (0.05 = 5%). Providers mix percent-scale and decimal-scale values for the
// same field, so classification is heuristic; a field whose scale cannot be
// resolved degrades to the nil missing sentinel, never an error.
package fundamentals

// Fund-like quote types. Expense ratios are only meaningful for these.
const (
	QuoteTypeETF        = "ETF"
	QuoteTypeMutualFund = "MUTUALFUND"
)

// DividendPayment is a single per-share dividend payment, used by the
// trailing-twelve-month yield fallback. Dates use the ISO "2006-01-02" form.
type DividendPayment struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// RawFields is the bag of named numeric values reported by the fundamentals
// provider for one instrument, plus its quote-type classification. The set
// of fields is fixed and enumerated (rather than an open-ended dynamic map)
// so the normalizer's branching stays exhaustive and testable. Nil means the
// provider did not report the field.
type RawFields struct {
	QuoteType string `json:"quote_type"`

	TrailingPE   *float64 `json:"trailing_pe"`
	ForwardPE    *float64 `json:"forward_pe"`
	DebtToEquity *float64 `json:"debt_to_equity"`

	// Dividend-yield candidates, in resolution priority order.
	DividendYield               *float64 `json:"dividend_yield"`
	TrailingAnnualDividendYield *float64 `json:"trailing_annual_dividend_yield"`

	// Margin candidates, first reported wins.
	ProfitMargins *float64 `json:"profit_margins"`
	NetMargins    *float64 `json:"net_margins"`

	ExpenseRatio *float64 `json:"expense_ratio"`

	// Inputs for the dividends-history yield fallback.
	CurrentPrice *float64          `json:"current_price"`
	Dividends    []DividendPayment `json:"dividends"`
}

// Record holds the normalized fundamentals for one instrument. Yield, margin
// and expense-ratio fields are decimal fractions; P/E, Forward P/E and D/E
// pass through as reported (plain ratios, not percent-like values). Nil is
// the missing sentinel.
type Record struct {
	PE              *float64 `json:"pe"`
	ForwardPE       *float64 `json:"forward_pe"`
	DebtToEquity    *float64 `json:"debt_to_equity"`
	DividendYield   *float64 `json:"dividend_yield"`
	NetProfitMargin *float64 `json:"net_profit_margin"`
	ExpenseRatio    *float64 `json:"expense_ratio"`
}

// Columns is the fixed presentation order of the fundamentals fields.
var Columns = []string{
	"P/E",
	"Forward P/E",
	"D/E",
	"Div Yield",
	"Net Profit Margin",
	"Expense Ratio",
}
