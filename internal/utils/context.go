// Package utils provides general-purpose helper utilities used across the
// application: type-safe context keys, password hashing, HTTP response
// writing, HTTP client construction, and JWT token generation and
// verification.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated subject's ID is
// stored in the request context by the auth middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key under which the auth middleware stores the resolved
// user record after verifying the token and confirming the subject still
// exists.
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the authenticated user's identifier from ctx.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is present and has the expected int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
