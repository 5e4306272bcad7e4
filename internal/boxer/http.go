package boxer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/pkg/http/respond"
)

// HTTPHandlers provides the REST endpoints for boxer management.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for boxer endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "boxer_http").Logger(),
	}
}

// Create handles POST /api/create-boxer.
func (h *HTTPHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var params NewBoxerParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	b, err := h.service.Create(r.Context(), params)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"boxer": b,
	})
}

// Delete handles DELETE /api/delete-boxer/{id}.
func (h *HTTPHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer_id": id,
	})
}

// GetByID handles GET /api/get-boxer-by-id/{id}.
func (h *HTTPHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer": b,
	})
}

// GetByName handles GET /api/get-boxer-by-name/{name}.
func (h *HTTPHandlers) GetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "name is required")
		return
	}

	b, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer": b,
	})
}

type updateStatsRequest struct {
	BoxerID int64  `json:"boxer_id"`
	Result  string `json:"result"`
}

// UpdateStats handles POST /api/update-boxer-stats.
func (h *HTTPHandlers) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req updateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	if err := h.service.UpdateStats(r.Context(), req.BoxerID, Result(req.Result)); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"boxer_id": req.BoxerID,
		"result":   req.Result,
	})
}

// DBCheck handles GET /api/db-check.
func (h *HTTPHandlers) DBCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DBCheck(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("db check failed")
		respond.ServiceUnavailable(w, respond.ErrCodeServiceUnavailable, err.Error())
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"database": "healthy",
	})
}

func (h *HTTPHandlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *HTTPHandlers) respondDomainError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.BadRequest(w, respond.ErrCodeValidationFailed, vErr.Message)
	case errors.Is(err, ErrNotFound):
		respond.NotFound(w, respond.ErrCodeBoxerNotFound, err.Error())
	case errors.Is(err, ErrNameTaken):
		respond.Conflict(w, respond.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidResult):
		respond.BadRequest(w, respond.ErrCodeInvalidResult, err.Error())
	default:
		h.logger.Error().Err(err).Msg("boxer operation failed")
		respond.InternalError(w, "internal error")
	}
}
