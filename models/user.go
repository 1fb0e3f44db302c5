package models

import (
	"strings"
	"time"
)

// User represents an account record stored in the "users" table.
// It is the only entity the service persists.
// PasswordHash must never leave the server process; clients always receive
// the [PublicUser] projection instead.
type User struct {
	// ID is the surrogate identifier assigned by the database.
	ID int64 `json:"id"`

	// Email is the unique, case-normalized login identifier.
	Email string `json:"email"`

	// GivenNames holds the user's first/middle names as entered at registration.
	GivenNames string `json:"givenNames"`

	// Surname holds the user's family name.
	Surname string `json:"surname"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Excluded from JSON serialization; the plaintext password is replaced by
	// this value at registration time and never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is set once by the database when the record is inserted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed by every mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of the user that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		GivenNames: u.GivenNames,
		Surname:    u.Surname,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// PublicUser is the client-facing subset of [User]. It carries no credential
// material by construction, so accidentally serializing it is harmless.
type PublicUser struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	GivenNames string    `json:"givenNames"`
	Surname    string    `json:"surname"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserPatch lists every updatable column of the users table as an optional
// field. A nil field is left untouched. The fixed field set keeps UPDATE
// statements bound to a known column list instead of arbitrary input keys.
type UserPatch struct {
	Email        *string
	GivenNames   *string
	Surname      *string
	PasswordHash *string
}

// IsEmpty reports whether the patch carries no changes at all.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.GivenNames == nil && p.Surname == nil && p.PasswordHash == nil
}

// NormalizeEmail lowercases and trims an email address so that uniqueness
// checks and lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
