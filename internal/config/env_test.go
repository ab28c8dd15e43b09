// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PASSWORD_HASH_KEY": "hash_secret",
		"APP_TOKEN_SIGN_KEY":    "jwt_secret",
		"APP_TOKEN_ISSUER":      "test_issuer",
		"APP_TOKEN_DURATION":    "1h",
		"APP_HASH_KEY":          "security_hash",
		"APP_VERSION":           "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":       "sqlite",
		"STORAGE_DB_DATABASE_URI": "/var/lib/vault.db",

		"TELEMETRY_ENDPOINT":     "http://collector:4318",
		"TELEMETRY_SERVICE_NAME": "vault",

		"ADAPTER_ADDRESS":         "vault:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_LOG_FILE":        "/var/log/vault-client.log",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "hash_secret", cfg.App.PasswordHashKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://collector:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "vault", cfg.Telemetry.ServiceName)

	assert.Equal(t, "vault:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/log/vault-client.log", cfg.Adapter.LogFile)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
