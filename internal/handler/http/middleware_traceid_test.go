package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	rr := executeTraceID(h, "")

	got := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)

	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated trace IDs are UUIDs")
}

func TestWithTraceID_ReusesIncoming(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	rr := executeTraceID(h, "caller-supplied-id")

	assert.Equal(t, "caller-supplied-id", rr.Header().Get(traceIDHeader))
}
