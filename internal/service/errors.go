package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password, so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpired is returned by ParseToken when the token is past its
	// expiry claim but otherwise well-formed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for every other token
	// defect: bad signature, malformed structure, wrong issuer.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed wraps signing failures from the JWT library.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError aggregates the per-field messages produced by input
// validation. Handlers surface Fields verbatim in the response envelope.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// AsValidationError unwraps err as a *ValidationError, or returns nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
