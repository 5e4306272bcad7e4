package ring

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
	"github.com/varadarohokale/boxing-arena/pkg/http/respond"
)

// HTTPHandlers provides the REST endpoints for ring and fight operations.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for ring endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "ring_http").Logger(),
	}
}

type enterRingRequest struct {
	BoxerID int64 `json:"boxer_id"`
}

// Enter handles POST /api/enter-ring. Accepts a JSON body or, for
// older clients, a boxer_id form field.
func (h *HTTPHandlers) Enter(w http.ResponseWriter, r *http.Request) {
	boxerID, err := decodeBoxerID(r)
	if err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, err.Error())
		return
	}

	b, err := h.service.Enter(r.Context(), boxerID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer": b,
	})
}

// StartFight handles POST /api/start-fight.
func (h *HTTPHandlers) StartFight(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Fight(r.Context())
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"winner": rec.WinnerName,
		"fight":  rec,
	})
}

// Clear handles POST /api/clear-ring.
func (h *HTTPHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	removed := h.service.ClearRing()
	respond.Success(w, http.StatusOK, map[string]interface{}{
		"removed": removed,
	})
}

// GetBoxers handles GET /api/get-boxers.
func (h *HTTPHandlers) GetBoxers(w http.ResponseWriter, r *http.Request) {
	boxers := h.service.Boxers()
	if boxers == nil {
		boxers = []boxer.Boxer{}
	}
	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxers": boxers,
	})
}

// GetSkill handles GET /api/get-fighting-skill?boxer_id=.
func (h *HTTPHandlers) GetSkill(w http.ResponseWriter, r *http.Request) {
	boxerID, err := strconv.ParseInt(r.URL.Query().Get("boxer_id"), 10, 64)
	if err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "boxer_id must be an integer")
		return
	}

	b, skill, err := h.service.Skill(r.Context(), boxerID)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer_id": b.ID,
		"name":     b.Name,
		"skill":    skill,
	})
}

// RecentFights handles GET /api/recent-fights?limit=.
func (h *HTTPHandlers) RecentFights(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.BadRequest(w, respond.ErrCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	fights, err := h.service.RecentFights(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list fights")
		respond.InternalError(w, "internal error")
		return
	}
	if fights == nil {
		fights = []FightRecord{}
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"fights": fights,
	})
}

func decodeBoxerID(r *http.Request) (int64, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return 0, errors.New("invalid form payload")
		}
		id, err := strconv.ParseInt(r.FormValue("boxer_id"), 10, 64)
		if err != nil {
			return 0, errors.New("boxer_id must be an integer")
		}
		return id, nil
	}

	var req enterRingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, errors.New("invalid JSON payload")
	}
	if req.BoxerID == 0 {
		return 0, errors.New("boxer_id is required")
	}
	return req.BoxerID, nil
}

func (h *HTTPHandlers) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRingFull):
		respond.Conflict(w, respond.ErrCodeRingFull, err.Error())
	case errors.Is(err, ErrAlreadyInRing):
		respond.Conflict(w, respond.ErrCodeAlreadyInRing, err.Error())
	case errors.Is(err, ErrNotEnoughEntrants):
		respond.Conflict(w, respond.ErrCodeNotEnoughEntrants, err.Error())
	case errors.Is(err, boxer.ErrNotFound):
		respond.NotFound(w, respond.ErrCodeBoxerNotFound, err.Error())
	case errors.Is(err, ErrRandomUnavailable):
		h.logger.Error().Err(err).Msg("random source unavailable")
		respond.Error(w, http.StatusBadGateway, respond.ErrCodeUpstreamError, err.Error())
	default:
		h.logger.Error().Err(err).Msg("ring operation failed")
		respond.InternalError(w, "internal error")
	}
}
