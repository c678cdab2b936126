// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "http://localhost:5000",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"RELAY_ADDRESS":          "127.0.0.1:5055",
		"RELAY_TOKEN_SIGN_KEY":   "jwt_secret",
		"RELAY_TOKEN_ISSUER":     "test_issuer",
		"RELAY_TOKEN_DURATION":   "1h",
		"RELAY_SHUTDOWN_TIMEOUT": "3s",

		"SANITIZER_WRITE_INTERVAL": "250ms",
		"SANITIZER_SERIALIZE":      "false",

		"LOG_LEVEL": "warn",
		"LOG_FILE":  "/tmp/clip.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "127.0.0.1:5055", cfg.Relay.HTTPAddress)
	assert.Equal(t, "jwt_secret", cfg.Relay.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Relay.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Relay.TokenDuration)
	assert.Equal(t, 3*time.Second, cfg.Relay.ShutdownTimeout)

	assert.Equal(t, 250*time.Millisecond, cfg.Sanitizer.WriteInterval)
	require.NotNil(t, cfg.Sanitizer.Serialize)
	assert.False(t, *cfg.Sanitizer.Serialize)
	assert.False(t, cfg.Sanitizer.SerializeSanitize())

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/clip.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://10.0.0.2:5000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://10.0.0.2:5000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Nil(t, cfg.Sanitizer.Serialize)
	assert.True(t, cfg.Sanitizer.SerializeSanitize())
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SANITIZER_WRITE_INTERVAL": "soon",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_WriteIntervalFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"milliseconds", "100ms", 100 * time.Millisecond},
		{"seconds", "1s", time.Second},
		{"zero", "0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SANITIZER_WRITE_INTERVAL": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Sanitizer.WriteInterval)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"RELAY_ADDRESS",
	"RELAY_TOKEN_SIGN_KEY",
	"RELAY_TOKEN_ISSUER",
	"RELAY_TOKEN_DURATION",
	"RELAY_SHUTDOWN_TIMEOUT",

	"SANITIZER_WRITE_INTERVAL",
	"SANITIZER_SERIALIZE",

	"LOG_LEVEL",
	"LOG_FILE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
