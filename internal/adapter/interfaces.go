// Package adapter provides the transport layer the client uses to talk to
// the authentication server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that doubles as the client-side
// session holder: it stores the bearer token issued at login, attaches it to
// every authenticated request, and discards it on logout or when the server
// answers 401.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/elparchetipk/go-auth-api/models"
)

// ServerAdapter defines transport-agnostic communication with the
// authentication server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ClearToken discards the stored bearer token. Subsequent authenticated
	// requests fail with [ErrUnauthorized] until a new Login succeeds.
	ClearToken()

	// Register creates a new account. Registration does not issue a token;
	// the caller logs in afterwards. Returns [ErrValidation] (wrapped) when
	// the server itemizes field problems and [ErrConflict] when the email is
	// already registered.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates with the server. On success the issued bearer
	// token is stored via SetToken and the public projection of the account
	// is returned.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// Logout tells the server the session is over and discards the stored
	// token regardless of the answer.
	Logout(ctx context.Context) error

	// Profile fetches the current account record using the stored token.
	Profile(ctx context.Context) (models.PublicUser, error)

	// Verify asks the server whether the stored token is still accepted and
	// returns the subject it resolves to.
	Verify(ctx context.Context) (models.PublicUser, error)

	// Health probes the server's liveness endpoint. It requires no token.
	Health(ctx context.Context) (models.HealthResponse, error)
}
