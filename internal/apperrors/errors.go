package apperrors

import "errors"

// Sentinel errors for the business layer. Services wrap these with %w and the
// handler boundary maps them to HTTP statuses with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrDriverUnavailable = errors.New("driver unavailable")
	ErrRideFull          = errors.New("ride full")
	ErrAlreadyJoined     = errors.New("already joined")
	ErrExternalService   = errors.New("external service failure")
	ErrConfig            = errors.New("missing configuration")
	ErrInternal          = errors.New("internal error")
)
