package respond

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInvalidWeight    = "invalid_weight"
	ErrCodeInvalidResult    = "invalid_result"
	ErrCodeInvalidSort      = "invalid_sort"

	// Resource errors
	ErrCodeBoxerNotFound = "boxer_not_found"
	ErrCodeAlreadyExists = "already_exists"

	// Ring errors
	ErrCodeRingFull          = "ring_full"
	ErrCodeAlreadyInRing     = "already_in_ring"
	ErrCodeNotEnoughEntrants = "not_enough_entrants"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
