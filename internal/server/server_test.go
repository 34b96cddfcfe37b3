package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/watchtower/internal/database"
	"github.com/aristath/watchtower/internal/modules/fundamentals"
	"github.com/aristath/watchtower/internal/modules/metrics"
	"github.com/aristath/watchtower/internal/modules/watchlist"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := zerolog.Nop()

	tmpFile, err := os.CreateTemp("", "test_server_watchlist_*.db")
	require.NoError(t, err)
	tmpPath := tmpFile.Name()
	require.NoError(t, tmpFile.Close())

	db, err := database.New(database.Config{Path: tmpPath, Name: "watchlist-test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(tmpPath)
	})

	repo := watchlist.NewRepository(db, log)
	require.NoError(t, repo.InitSchema())

	return New(Config{
		Port:         0,
		Log:          log,
		Metrics:      metrics.NewHandlers(metrics.NewService(log), metrics.Defaults{Benchmark: "SPY"}, log),
		Fundamentals: fundamentals.NewHandlers(fundamentals.NewNormalizer(log), log),
		Watchlist:    watchlist.NewHandlers(repo, log),
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]interface{}{
		"prices": map[string]interface{}{
			"AAPL": []map[string]interface{}{
				{"date": "2024-01-02", "close": 100.0},
				{"date": "2024-01-03", "close": 101.0},
				{"date": "2024-01-04", "close": 99.5},
			},
			"SPY": []map[string]interface{}{
				{"date": "2024-01-02", "close": 470.0},
				{"date": "2024-01-03", "close": 472.0},
				{"date": "2024-01-04", "close": 469.0},
			},
		},
		"benchmark":      "SPY",
		"risk_free_rate": 0.02,
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Columns   []string                  `json:"columns"`
		Benchmark string                    `json:"benchmark"`
		Records   map[string]metrics.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "SPY", resp.Benchmark)
	assert.Len(t, resp.Columns, 9)
	require.Len(t, resp.Records, 1)
	record, ok := resp.Records["AAPL"]
	require.True(t, ok, "benchmark must not appear as a row")
	assert.NotNil(t, record.AnnReturn)
	assert.NotNil(t, record.Volatility)
	assert.NotNil(t, record.Beta)
}

func TestMetricsEndpointResolvesBenchmarkAlias(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{"prices":{},"benchmark":"S&P 500"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/metrics", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Benchmark string `json:"benchmark"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "^GSPC", resp.Benchmark)
}

func TestMetricsEndpointRejectsBadBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFundamentalsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{
		"instruments": {
			"VTI": {"quote_type": "ETF", "expense_ratio": 0.03, "dividend_yield": 1.19}
		}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/fundamentals/normalize", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records map[string]fundamentals.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	record, ok := resp.Records["VTI"]
	require.True(t, ok)
	require.NotNil(t, record.DividendYield)
	assert.InDelta(t, 0.0119, *record.DividendYield, 1e-12)
	require.NotNil(t, record.ExpenseRatio)
	assert.InDelta(t, 0.03, *record.ExpenseRatio, 1e-12)
}

func TestWatchlistEndpoints(t *testing.T) {
	srv := newTestServer(t)

	// Add a ticker.
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist/US%20Equities", bytes.NewReader([]byte(`{"ticker":"aapl"}`)))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// List includes it, normalized.
	req = httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Categories map[string][]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Equal(t, []string{"AAPL"}, listResp.Categories["US Equities"])

	// Remove it again.
	req = httptest.NewRequest(http.MethodDelete, "/api/watchlist/US%20Equities/AAPL", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	var afterResp struct {
		Categories map[string][]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterResp))
	assert.Empty(t, afterResp.Categories["US Equities"])

	// Unknown category is a client error.
	req = httptest.NewRequest(http.MethodPost, "/api/watchlist/Crypto", bytes.NewReader([]byte(`{"ticker":"BTC-USD"}`)))
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
