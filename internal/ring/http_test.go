package ring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

func newRingMux(svc *Service) *http.ServeMux {
	h := NewHTTPHandlers(svc, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/enter-ring", h.Enter)
	mux.HandleFunc("POST /api/start-fight", h.StartFight)
	mux.HandleFunc("POST /api/clear-ring", h.Clear)
	mux.HandleFunc("GET /api/get-boxers", h.GetBoxers)
	mux.HandleFunc("GET /api/get-fighting-skill", h.GetSkill)
	return mux
}

func doRing(t *testing.T, mux *http.ServeMux, method, target, body, contentType string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func threeBoxerService() *Service {
	store := &stubBoxerStore{boxers: map[int64]boxer.Boxer{
		1: testBoxer(1, "Rocky", 210, 32, 74.5),
		2: testBoxer(2, "Apollo", 205, 34, 78),
		3: testBoxer(3, "Drago", 240, 30, 80),
	}}
	return NewService(New(zerolog.Nop()), store, &stubFightStore{}, &stubRandom{value: 0.5}, nil, nil, zerolog.Nop())
}

func TestEnterRingEndpointFullRing(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	rec, body := doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":1}`, "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])

	rec, _ = doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":2}`, "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Third entrant is the documented ring-full violation.
	rec, body = doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":3}`, "application/json")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "ring_full", body["error"])
}

func TestEnterRingEndpointFormVariant(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	rec, body := doRing(t, mux, http.MethodPost, "/api/enter-ring", "boxer_id=1", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
}

func TestStartFightEndpointNotEnoughEntrants(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	rec, body := doRing(t, mux, http.MethodPost, "/api/start-fight", "", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "not_enough_entrants", body["error"])
}

func TestStartFightEndpoint(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":1}`, "application/json")
	doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":2}`, "application/json")

	rec, body := doRing(t, mux, http.MethodPost, "/api/start-fight", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["winner"])

	// Ring is cleared after the bout.
	rec, body = doRing(t, mux, http.MethodGet, "/api/get-boxers", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["boxers"])
}

func TestClearRingEndpoint(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	doRing(t, mux, http.MethodPost, "/api/enter-ring", `{"boxer_id":1}`, "application/json")

	rec, body := doRing(t, mux, http.MethodPost, "/api/clear-ring", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["removed"])
}

func TestGetFightingSkillEndpoint(t *testing.T) {
	mux := newRingMux(threeBoxerService())

	rec, body := doRing(t, mux, http.MethodGet, "/api/get-fighting-skill?boxer_id=1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Rocky", body["name"])
	assert.InDelta(t, 1057.45, body["skill"].(float64), 1e-9)

	rec, body = doRing(t, mux, http.MethodGet, "/api/get-fighting-skill?boxer_id=99", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", body["status"])
}
