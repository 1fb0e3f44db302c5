// Package service implements the business logic of the authentication
// service: credential validation, password hashing, and JWT lifecycle.
package service

import (
	"context"

	"github.com/elparchetipk/go-auth-api/models"
)

// AuthService is the application-facing contract for all authentication
// flows. Handlers compose these operations into HTTP endpoints.
type AuthService interface {
	// Register validates the registration input, hashes the password, and
	// creates the account. Returns *ValidationError for bad input,
	// store.ErrEmailAlreadyExists for duplicates.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an email/password pair. A missing account and a
	// wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile re-fetches the subject by ID rather than trusting a
	// potentially-stale token payload.
	Profile(ctx context.Context, userID int64) (models.User, error)

	// Update applies a partial update to the subject's record.
	Update(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)

	// Delete removes the subject's record.
	Delete(ctx context.Context, userID int64) error

	// CreateToken issues a signed, time-limited JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw JWT string, distinguishing ErrTokenIsExpired
	// from ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
