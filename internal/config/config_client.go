package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client-side view of the merged configuration.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via the shared builder (skipping server-only
// validation), maps only the fields relevant to the client runtime, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	base, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		buildUnvalidated()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    base.Client.ServerAddress,
			RequestTimeout: base.Client.RequestTimeout,
		},
	}

	return cfg, cfg.validate()
}
