package fundamentals

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handlers handles fundamentals HTTP requests
type Handlers struct {
	normalizer *Normalizer
	log        zerolog.Logger
}

// NewHandlers creates new fundamentals handlers
func NewHandlers(normalizer *Normalizer, log zerolog.Logger) *Handlers {
	return &Handlers{
		normalizer: normalizer,
		log:        log.With().Str("handler", "fundamentals").Logger(),
	}
}

type normalizeRequest struct {
	Instruments map[string]RawFields `json:"instruments"`
}

type normalizeResponse struct {
	Columns []string          `json:"columns"`
	Records map[string]Record `json:"records"`
}

// HandleNormalize handles POST /api/fundamentals/normalize
func (h *Handlers) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn().Err(err).Msg("Invalid fundamentals request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	records := h.normalizer.NormalizeAll(req.Instruments)

	h.writeJSON(w, http.StatusOK, normalizeResponse{
		Columns: Columns,
		Records: records,
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
