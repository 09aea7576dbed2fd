package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoFields rejects an update request that supplies nothing to change.
	ErrNoFields = errors.New("no fields supplied")
)

// ValidationError carries the ordered rule violations from the validate
// package up to the HTTP layer.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
