package respond

import (
	"encoding/json"
	"net/http"
)

// Every response body carries a top-level "status" field so callers can
// route on success/error without inspecting HTTP codes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the standardized error envelope.
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Success writes a success envelope merging the given fields.
func Success(w http.ResponseWriter, status int, fields map[string]interface{}) {
	body := map[string]interface{}{"status": StatusSuccess}
	for k, v := range fields {
		if k == "status" {
			continue
		}
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Error writes a standardized error response.
func Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  StatusError,
		Error:   code,
		Message: message,
	})
}

// ErrorWithDetails writes an error response with additional details.
func ErrorWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  StatusError,
		Error:   code,
		Message: message,
		Details: details,
	})
}

// InternalError writes an internal server error response.
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// NotFound writes a not found error response.
func NotFound(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusNotFound, code, message)
}

// BadRequest writes a bad request error response.
func BadRequest(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusBadRequest, code, message)
}

// Conflict writes a conflict error response.
func Conflict(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusConflict, code, message)
}

// ServiceUnavailable writes a service unavailable error response.
func ServiceUnavailable(w http.ResponseWriter, code, message string) {
	Error(w, http.StatusServiceUnavailable, code, message)
}
