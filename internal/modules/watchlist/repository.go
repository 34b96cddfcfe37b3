// Package watchlist persists the user's category/ticker watchlist.
package watchlist

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/watchtower/internal/database"
	"github.com/aristath/watchtower/internal/modules/universe"
)

// DefaultCategories is the fixed set of watchlist categories. Every listing
// includes all of them, empty or not, so clients get a stable shape.
var DefaultCategories = []string{
	"US Equities",
	"International Equities",
	"Emerging Market Equities",
	"Global Factor Equities",
	"Canada Equities",
	"Long-Duration Bonds",
	"Aggregate Bonds",
	"Short-Term Credit",
	"Gold",
	"Silver",
}

// Repository provides data access for the watchlist
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new watchlist repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "watchlist").Logger(),
	}
}

// InitSchema creates the watchlist table if it does not exist
func (r *Repository) InitSchema() error {
	if _, err := r.db.Conn().Exec(Schema); err != nil {
		return fmt.Errorf("failed to initialize watchlist schema: %w", err)
	}
	return nil
}

// List returns every category with its tickers, sorted. All default
// categories are present even when empty.
func (r *Repository) List() (map[string][]string, error) {
	rows, err := r.db.Conn().Query(`SELECT category, ticker FROM watchlist ORDER BY category, ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]string, len(DefaultCategories))
	for _, c := range DefaultCategories {
		result[c] = []string{}
	}

	for rows.Next() {
		var category, ticker string
		if err := rows.Scan(&category, &ticker); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		result[category] = append(result[category], ticker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist rows: %w", err)
	}

	return result, nil
}

// Add stores a ticker in a category. The ticker is normalized (aliases
// resolved, upper-cased) before storage; adding a ticker that is already
// present is a no-op.
func (r *Repository) Add(category, ticker string) error {
	if !IsValidCategory(category) {
		return fmt.Errorf("unknown watchlist category: %s", category)
	}

	normalized := universe.NormalizeTicker(ticker)
	if normalized == "" {
		return fmt.Errorf("empty ticker")
	}

	_, err := r.db.Conn().Exec(
		`INSERT OR IGNORE INTO watchlist (category, ticker) VALUES (?, ?)`,
		category, normalized,
	)
	if err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", normalized, category, err)
	}

	r.log.Debug().Str("category", category).Str("ticker", normalized).Msg("Added to watchlist")
	return nil
}

// Remove deletes a ticker from a category. Removing an absent ticker is a
// no-op.
func (r *Repository) Remove(category, ticker string) error {
	normalized := universe.NormalizeTicker(ticker)

	_, err := r.db.Conn().Exec(
		`DELETE FROM watchlist WHERE category = ? AND ticker = ?`,
		category, normalized,
	)
	if err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", normalized, category, err)
	}

	r.log.Debug().Str("category", category).Str("ticker", normalized).Msg("Removed from watchlist")
	return nil
}

// Tickers returns the sorted, de-duplicated union of tickers across the
// given categories (all categories when none are given).
func (r *Repository) Tickers(categories ...string) ([]string, error) {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	all, err := r.List()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, c := range categories {
		for _, t := range all[c] {
			seen[t] = struct{}{}
		}
	}

	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers, nil
}

// IsValidCategory reports whether the category is one of the defaults.
func IsValidCategory(category string) bool {
	for _, c := range DefaultCategories {
		if c == category {
			return true
		}
	}
	return false
}
