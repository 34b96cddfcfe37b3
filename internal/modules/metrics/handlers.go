package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/watchtower/internal/domain"
	"github.com/aristath/watchtower/internal/modules/universe"
)

// Defaults are applied when a compute request leaves a field unset.
type Defaults struct {
	Benchmark    string
	RiskFreeRate float64
}

// Handlers handles metrics HTTP requests
type Handlers struct {
	service  *Service
	defaults Defaults
	log      zerolog.Logger
}

// NewHandlers creates new metrics handlers
func NewHandlers(service *Service, defaults Defaults, log zerolog.Logger) *Handlers {
	return &Handlers{
		service:  service,
		defaults: defaults,
		log:      log.With().Str("handler", "metrics").Logger(),
	}
}

type computeRequest struct {
	// Prices is the already-assembled price matrix, keyed by instrument.
	// Retrieval from the market-data provider happens upstream; missing
	// instruments are simply absent from the matrix.
	Prices    domain.PriceMatrix `json:"prices"`
	Benchmark string             `json:"benchmark"`
	// Pointer so that an explicit 0 is distinguishable from "not set".
	RiskFreeRate *float64 `json:"risk_free_rate"`
}

type computeResponse struct {
	Columns   []string          `json:"columns"`
	Benchmark string            `json:"benchmark,omitempty"`
	Records   map[string]Record `json:"records"`
}

// HandleCompute handles POST /api/metrics.
// Values in the response are decimal fractions; display scaling (x100 for
// percent columns) belongs to the client.
func (h *Handlers) HandleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Msg("Invalid metrics request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Benchmark == "" {
		req.Benchmark = h.defaults.Benchmark
	}
	rfAnnual := h.defaults.RiskFreeRate
	if req.RiskFreeRate != nil {
		rfAnnual = *req.RiskFreeRate
	}

	// The benchmark may arrive as an alias ("S&P 500"); resolve it the same
	// way the matrix keys were resolved upstream.
	benchmark := universe.NormalizeTicker(req.Benchmark)

	records := h.service.ComputeAll(req.Prices, benchmark, rfAnnual)

	h.writeJSON(w, http.StatusOK, computeResponse{
		Columns:   Columns,
		Benchmark: benchmark,
		Records:   records,
	})
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
