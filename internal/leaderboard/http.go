package leaderboard

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
	"github.com/varadarohokale/boxing-arena/pkg/http/respond"
)

// HTTPHandler serves GET /api/leaderboard.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler creates the leaderboard HTTP handler.
func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// Get handles GET /api/leaderboard?sort=wins|win_pct.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Standings(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		if errors.Is(err, ErrUnknownSort) {
			respond.BadRequest(w, respond.ErrCodeInvalidSort, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch leaderboard")
		respond.InternalError(w, "internal error")
		return
	}
	if entries == nil {
		entries = []boxer.LeaderboardEntry{}
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"leaderboard": entries,
	})
}
