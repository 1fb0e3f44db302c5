package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elparchetipk/go-auth-api/internal/service"
	"github.com/elparchetipk/go-auth-api/internal/store"
	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// happyAuthService accepts any token as belonging to storedUser.
func happyAuthService() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: storedUser.ID}, nil
		},
		profileFn: func(_ context.Context, _ int64) (models.User, error) {
			return storedUser, nil
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// nextSpy records whether the downstream handler ran and what it saw in the
// request context.
type nextSpy struct {
	called bool
	userID int64
	hasID  bool
	user   models.User
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.hasID = utils.GetUserIDFromContext(r.Context())
		s.user, _ = r.Context().Value(utils.UserCtxKey).(models.User)
		w.WriteHeader(http.StatusOK)
	})
}

// ---- auth ----

func TestAuth_Success(t *testing.T) {
	spy := &nextSpy{}
	h := newHandlerWithAuth(happyAuthService())

	rr := executeAuth(h, "Bearer some.valid.token", spy.handler())

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, spy.called)
	assert.True(t, spy.hasID)
	assert.Equal(t, int64(7), spy.userID)
	assert.Equal(t, "ana@example.com", spy.user.Email)
}

func TestAuth_RejectionKinds(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		parseErr    error
		profileErr  error
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantMessage: "missing credential",
		},
		{
			name:        "not a bearer scheme",
			authHeader:  "Basic dXNlcjpwdw==",
			wantMessage: "malformed credential",
		},
		{
			name:        "scheme without token",
			authHeader:  "Bearer",
			wantMessage: "malformed credential",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired.token",
			parseErr:    service.ErrTokenIsExpired,
			wantMessage: "token expired",
		},
		{
			name:        "tampered token",
			authHeader:  "Bearer tampered.token",
			parseErr:    service.ErrTokenIsInvalid,
			wantMessage: "token invalid",
		},
		{
			name:        "subject no longer exists",
			authHeader:  "Bearer orphaned.token",
			profileErr:  store.ErrUserNotFound,
			wantMessage: "subject no longer exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := happyAuthService()
			if tt.parseErr != nil {
				auth.parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				}
			}
			if tt.profileErr != nil {
				auth.profileFn = func(_ context.Context, _ int64) (models.User, error) {
					return models.User{}, tt.profileErr
				}
			}

			spy := &nextSpy{}
			h := newHandlerWithAuth(auth)

			rr := executeAuth(h, tt.authHeader, spy.handler())

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, spy.called, "rejected requests never reach the handler")

			resp := decodeResponse(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

// ---- authOptional ----

func TestAuthOptional_ValidTokenPopulatesContext(t *testing.T) {
	spy := &nextSpy{}
	h := newHandlerWithAuth(happyAuthService())

	middleware := h.authOptional(spy.handler())
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, spy.hasID)
	assert.Equal(t, int64(7), spy.userID)
}

func TestAuthOptional_AnonymousPassThrough(t *testing.T) {
	spy := &nextSpy{}
	h := newHandlerWithAuth(&mockAuthService{})

	middleware := h.authOptional(spy.handler())
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, spy.called, "the request passes through anonymously")
	assert.False(t, spy.hasID)
}
