package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit_Routing drives requests through the full router, middleware chain
// included, and checks which endpoints are gated.
func TestInit_Routing(t *testing.T) {
	h := newHandlerWithAuth(happyAuthService())
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "logout is public", method: http.MethodPost, path: "/api/auth/logout", wantStatus: http.StatusOK},
		{name: "profile requires a token", method: http.MethodGet, path: "/api/auth/profile", wantStatus: http.StatusUnauthorized},
		{name: "profile with token", method: http.MethodGet, path: "/api/auth/profile", authHeader: "Bearer t", wantStatus: http.StatusOK},
		{name: "verify requires a token", method: http.MethodGet, path: "/api/auth/verify", wantStatus: http.StatusUnauthorized},
		{name: "verify with token", method: http.MethodGet, path: "/api/auth/verify", authHeader: "Bearer t", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/auth/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/auth/register", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// TestInit_TraceIDOnEveryResponse verifies the tracing middleware runs for
// every route wired by Init.
func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h := newHandlerWithAuth(happyAuthService())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
