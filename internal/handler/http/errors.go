package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrMissingAuthorizationHeader is returned by the auth middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrMissingAuthorizationHeader = errors.New("missing `Authorization` header")

	// ErrMalformedAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a "Bearer <token>" value.
	ErrMalformedAuthorizationHeader = errors.New("malformed `Authorization` header")
)
