package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	// HashKey signs outbound requests when non-empty; it must match the
	// server's APP_HASH_KEY.
	HashKey string

	// ServerURL is the base URL of the server API, with scheme.
	ServerURL string

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration

	// LogFile is the client log destination; empty disables logging.
	LogFile string
}

// GetClientConfig loads the client view of the configuration from the
// ADAPTER_* environment, the client flags and the optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withClientFlags().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		HashKey:        cfg.App.HashKey,
		ServerURL:      withScheme(cfg.Adapter.HTTPAddress),
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogFile:        cfg.Adapter.LogFile,
	}
}

func withScheme(address string) string {
	if address == "" || strings.Contains(address, "://") {
		return address
	}
	return "http://" + address
}
