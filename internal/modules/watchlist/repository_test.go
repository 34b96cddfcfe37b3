package watchlist

import (
	"fmt"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/watchtower/internal/database"
)

// newTestRepo creates a repository backed by a temporary database file.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test_watchlist_*.db")
	require.NoError(t, err)
	tmpPath := tmpFile.Name()
	require.NoError(t, tmpFile.Close())

	db, err := database.New(database.Config{
		Path: tmpPath,
		Name: fmt.Sprintf("watchlist-test-%s", t.Name()),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(tmpPath)
	})

	repo := NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.InitSchema())
	return repo
}

func TestListIncludesAllDefaultCategories(t *testing.T) {
	repo := newTestRepo(t)

	categories, err := repo.List()
	require.NoError(t, err)

	require.Len(t, categories, len(DefaultCategories))
	for _, c := range DefaultCategories {
		tickers, ok := categories[c]
		assert.True(t, ok, "category %s missing", c)
		assert.Empty(t, tickers)
	}
}

func TestAddAndList(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add("US Equities", "aapl"))
	require.NoError(t, repo.Add("US Equities", "MSFT"))
	require.NoError(t, repo.Add("Gold", "GLD"))

	categories, err := repo.List()
	require.NoError(t, err)

	// Tickers come back upper-cased and sorted.
	assert.Equal(t, []string{"AAPL", "MSFT"}, categories["US Equities"])
	assert.Equal(t, []string{"GLD"}, categories["Gold"])
}

func TestAddNormalizesAliases(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add("US Equities", "S&P 500"))

	categories, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"^GSPC"}, categories["US Equities"])
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add("US Equities", "AAPL"))
	require.NoError(t, repo.Add("US Equities", "aapl"))

	categories, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, categories["US Equities"])
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Add("Crypto", "BTC-USD")
	assert.Error(t, err)
}

func TestAddRejectsEmptyTicker(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Add("US Equities", "   ")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add("US Equities", "AAPL"))
	require.NoError(t, repo.Remove("US Equities", "aapl"))

	categories, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, categories["US Equities"])

	// Removing an absent ticker is a no-op, not an error.
	require.NoError(t, repo.Remove("US Equities", "MSFT"))
}

func TestTickers(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Add("US Equities", "MSFT"))
	require.NoError(t, repo.Add("US Equities", "AAPL"))
	require.NoError(t, repo.Add("Gold", "GLD"))
	require.NoError(t, repo.Add("Silver", "SLV"))

	t.Run("union across all categories", func(t *testing.T) {
		tickers, err := repo.Tickers()
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "GLD", "MSFT", "SLV"}, tickers)
	})

	t.Run("subset of categories", func(t *testing.T) {
		tickers, err := repo.Tickers("Gold", "Silver")
		require.NoError(t, err)
		assert.Equal(t, []string{"GLD", "SLV"}, tickers)
	})

	t.Run("deduplicates across categories", func(t *testing.T) {
		require.NoError(t, repo.Add("Global Factor Equities", "AAPL"))
		tickers, err := repo.Tickers("US Equities", "Global Factor Equities")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "MSFT"}, tickers)
	})
}
