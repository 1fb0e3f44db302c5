package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/elparchetipk/go-auth-api/internal/config"
	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.token = ""
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// POST /api/auth/register and returns the created account's public
// projection. No token is issued on this path.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var envelope models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&envelope).
		Post("/api/auth/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}
	if envelope.User == nil {
		return models.PublicUser{}, fmt.Errorf("register: answer carries no user")
	}

	return *envelope.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the envelope is
// stored via SetToken for subsequent authenticated requests.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	var envelope models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&envelope).
		Post("/api/auth/login")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}
	if envelope.Token == "" || envelope.User == nil {
		return models.PublicUser{}, fmt.Errorf("login: answer carries no token")
	}

	h.SetToken(envelope.Token)
	return *envelope.User, nil
}

// Logout implements [ServerAdapter]. The stored token is discarded whatever
// the server answers: a bearer token the client no longer holds is as good
// as revoked from the client's point of view.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.ClearToken()

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Profile implements [ServerAdapter]. A 401 answer discards the stored token
// so the client returns to the anonymous state.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.PublicUser, error) {
	return h.authedGet(ctx, "/api/auth/profile")
}

// Verify implements [ServerAdapter]. A 401 answer discards the stored token.
func (h *httpServerAdapter) Verify(ctx context.Context) (models.PublicUser, error) {
	return h.authedGet(ctx, "/api/auth/verify")
}

func (h *httpServerAdapter) authedGet(ctx context.Context, path string) (models.PublicUser, error) {
	if h.token == "" {
		return models.PublicUser{}, fmt.Errorf("%w: no token held", ErrUnauthorized)
	}

	var envelope models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetResult(&envelope).
		Get(path)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusUnauthorized {
			h.ClearToken()
		}
		return models.PublicUser{}, err
	}
	if envelope.User == nil {
		return models.PublicUser{}, fmt.Errorf("GET %s: answer carries no user", path)
	}

	return *envelope.User, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}
