package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/internal/service"
	"github.com/elparchetipk/go-auth-api/internal/store"
	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and re-fetches the
// subject by ID so a token issued for a since-deleted account is rejected.
// On success the subject's ID is stored in the request context under
// [utils.UserIDCtxKey] and the resolved record under [utils.UserCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases, each with its own envelope message:
//   - The "Authorization" header is absent ([ErrMissingAuthorizationHeader]).
//   - The header value is not a "Bearer <token>" pair
//     ([ErrMalformedAuthorizationHeader]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid ([service.ErrTokenIsInvalid]).
//   - The token's subject no longer exists ([store.ErrUserNotFound]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx, user, err := h.authenticate(r)
		if err != nil {
			log.Err(err).Msg("request rejected by auth middleware")
			utils.WriteJSON(w, models.Fail(rejectionMessage(err)), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authOptional is the non-rejecting variant of [Handler.auth]: a valid token
// populates the context exactly as auth does, while a missing or bad one
// lets the request through anonymously. Handlers behind it branch on
// [utils.GetUserIDFromContext].
func (h *Handler) authOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, user, err := h.authenticate(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate runs the shared verification steps: header extraction, token
// parsing, and the subject existence check.
func (h *Handler) authenticate(r *http.Request) (context.Context, models.User, error) {
	ctx := r.Context()

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ctx, models.User{}, ErrMissingAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return ctx, models.User{}, ErrMalformedAuthorizationHeader
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return ctx, models.User{}, err
	}

	user, err := h.services.AuthService.Profile(ctx, token.UserID)
	if err != nil {
		return ctx, models.User{}, err
	}

	return ctx, user, nil
}

// rejectionMessage maps an authentication failure onto the message carried
// by the 401 envelope.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingAuthorizationHeader):
		return "missing credential"
	case errors.Is(err, ErrMalformedAuthorizationHeader):
		return "malformed credential"
	case errors.Is(err, service.ErrTokenIsExpired):
		return "token expired"
	case errors.Is(err, service.ErrTokenIsInvalid):
		return "token invalid"
	case errors.Is(err, store.ErrUserNotFound):
		return "subject no longer exists"
	default:
		return "unauthorized"
	}
}
