package watchlist

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers handles watchlist HTTP requests
type Handlers struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandlers creates new watchlist handlers
func NewHandlers(repo *Repository, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo: repo,
		log:  log.With().Str("handler", "watchlist").Logger(),
	}
}

type addRequest struct {
	Ticker string `json:"ticker"`
}

// HandleList handles GET /api/watchlist
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list watchlist")
		http.Error(w, "Failed to list watchlist", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// HandleAdd handles POST /api/watchlist/{category}
func (h *Handlers) HandleAdd(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.repo.Add(category, req.Ticker); err != nil {
		h.log.Warn().Err(err).Str("category", category).Msg("Failed to add ticker")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

// HandleRemove handles DELETE /api/watchlist/{category}/{ticker}
func (h *Handlers) HandleRemove(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	ticker := chi.URLParam(r, "ticker")

	if err := h.repo.Remove(category, ticker); err != nil {
		h.log.Error().Err(err).Str("category", category).Str("ticker", ticker).Msg("Failed to remove ticker")
		http.Error(w, "Failed to remove ticker", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
