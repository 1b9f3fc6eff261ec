package service

import "errors"

// ValidationError reports a request that failed field validation. Handlers
// surface its Message to the caller with a 400 status; nothing is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
