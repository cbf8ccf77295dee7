package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrInvalidStatus = errors.New("invalid quote status")
var ErrInvalidCredentials = errors.New("invalid credentials") // password does not match the configured admin hash

// ErrSMSNotConfigured is returned when no SMS sender is wired in.
var ErrSMSNotConfigured = errors.New("SMS service not configured")

// ErrNoCarriers is returned before any network call when a submission names no carrier.
var ErrNoCarriers = errors.New("at least one carrier must be selected")

// ValidationError carries a message that is safe to show to the submitter.
// Handlers answer it with 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err wraps a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
