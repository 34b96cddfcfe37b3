package watchlist

// Schema for the watchlist database. One row per (category, ticker); tickers
// are stored upper-cased and canonical so lookups never depend on input
// casing.
const Schema = `
CREATE TABLE IF NOT EXISTS watchlist (
	category   TEXT NOT NULL,
	ticker     TEXT NOT NULL,
	created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
	PRIMARY KEY (category, ticker)
);

CREATE INDEX IF NOT EXISTS idx_watchlist_category ON watchlist(category);
`
