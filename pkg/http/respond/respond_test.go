package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, map[string]interface{}{"boxer_id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(7), body["boxer_id"])
}

func TestSuccessIgnoresStatusOverride(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, map[string]interface{}{"status": "bogus"})

	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, ErrCodeRingFull, "ring is full")

	assert.Equal(t, http.StatusConflict, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, ErrCodeRingFull, body["error"])
	assert.Equal(t, "ring is full", body["message"])
}

func TestHelperStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		call func(w http.ResponseWriter)
		want int
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, ErrCodeInvalidRequest, "x") }, http.StatusBadRequest},
		{"not found", func(w http.ResponseWriter) { NotFound(w, ErrCodeBoxerNotFound, "x") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, ErrCodeRingFull, "x") }, http.StatusConflict},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "x") }, http.StatusInternalServerError},
		{"unavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, ErrCodeServiceUnavailable, "x") }, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.call(rec)
			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "error", decode(t, rec)["status"])
		})
	}
}
