// Package universe resolves user-facing instrument identifiers. Users type
// index names and shorthand ("S&P 500", "SPX"); the data provider wants
// canonical symbols ("^GSPC"). Resolution is a fixed alias table - anything
// not in the table passes through upper-cased.
package universe

import "strings"

// aliases maps common index names and shorthand to provider symbols.
var aliases = map[string]string{
	// S&P 500
	"S&P":     "^GSPC",
	"S&P 500": "^GSPC",
	"SP500":   "^GSPC",
	"SPX":     "^GSPC",
	"GSPC":    "^GSPC",
	"^SPX":    "^GSPC",

	// US indices
	"NASDAQ":       "^IXIC",
	"NASDAQ 100":   "^NDX",
	"NDX":          "^NDX",
	"DOW":          "^DJI",
	"DJIA":         "^DJI",
	"RUSSELL 2000": "^RUT",
	"RUT":          "^RUT",

	// Canada
	"TSX":           "^GSPTSE",
	"TSX COMPOSITE": "^GSPTSE",

	// India
	"NIFTY 50": "^NSEI",
	"SENSEX":   "^BSESN",
}

// NormalizeTicker resolves a single identifier: trims, upper-cases and maps
// known aliases to their canonical symbol. Empty input stays empty.
func NormalizeTicker(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return ""
	}

	u := strings.ToUpper(strings.ReplaceAll(s, "’", "'"))
	if canonical, ok := aliases[u]; ok {
		return canonical
	}
	return u
}

// NormalizeList resolves every identifier in a list, dropping blanks.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, NormalizeTicker(item))
	}
	return out
}

// ParseTickerList splits free-form user input (comma or newline separated)
// into upper-cased ticker tokens.
func ParseTickerList(text string) []string {
	if text == "" {
		return []string{}
	}

	parts := strings.Split(strings.ReplaceAll(text, "\n", ","), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
