package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create or update a
	// user collides with the unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmptyPatch is returned by UpdateUser when the supplied patch carries
	// no changes at all.
	ErrEmptyPatch = errors.New("empty update patch")
)
