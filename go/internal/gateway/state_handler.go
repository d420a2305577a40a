package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcdev12/pelada/go/internal/draw"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/rs/zerolog/log"
)

// DrawProvider returns the latest stored draw of a match
type DrawProvider interface {
	GetLatestDraw(ctx context.Context, matchID string) (*models.DrawResult, error)
}

// StateHandler lets a client that just connected fetch the current draw
// before live events arrive.
type StateHandler struct {
	provider DrawProvider
}

func NewStateHandler(provider DrawProvider) *StateHandler {
	return &StateHandler{provider: provider}
}

// HandleGetLatestDraw handles GET /api/matches/{matchID}/draw
func (h *StateHandler) HandleGetLatestDraw(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("matchID")
	if matchID == "" {
		http.Error(w, "match ID is required", http.StatusBadRequest)
		return
	}

	result, err := h.provider.GetLatestDraw(r.Context(), matchID)
	if errors.Is(err, draw.ErrDrawNotFound) {
		http.Error(w, "no draw for match", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("match_id", matchID).Msg("failed to get latest draw")
		http.Error(w, "failed to get latest draw", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("failed to encode draw response")
	}
}

func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/matches/{matchID}/draw", h.HandleGetLatestDraw)
}
