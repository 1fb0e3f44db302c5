// Package store implements the persistence layer of the authentication
// service: a PostgreSQL-backed repository over the single "users" table.
package store

import (
	"context"

	"github.com/elparchetipk/go-auth-api/models"
)

// UserRepository is the credential-store contract consumed by the service
// layer. The database-level uniqueness constraint on email is the
// authoritative guarantee against duplicate accounts; callers may use
// FindUserByEmail as a fast-path existence check but must still handle
// [ErrEmailAlreadyExists] from CreateUser.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (ID, CreatedAt, UpdatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given (normalized) email or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUser applies the non-nil fields of patch to the identified user
	// and returns the updated record. UpdatedAt is refreshed by the store.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the identified user. Returns ErrUserNotFound when
	// no row was deleted.
	DeleteUser(ctx context.Context, id int64) error
}
