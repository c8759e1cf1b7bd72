package utils

// Application Constants
const (
	AppName    = "UniStay"
	AppVersion = "1.0.0"

	StatusSuccess = "success"
	StatusError   = "error"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Ride matching
	SimilarRideRadiusKm  = 2.0
	SharedRideWindowMins = 30

	// Content limits
	MaxReviewLength  = 500
	MaxCommentLength = 300

	// Error messages
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
)
