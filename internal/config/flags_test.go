package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5055}, expected: "localhost:5055"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:5055", expected: NetAddress{Host: "localhost", Port: 5055}},
		{name: "ipv4", input: "127.0.0.1:8080", expected: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too big", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestRegisterFlags_AllFlags(t *testing.T) {
	fs, flags := NewFlagSet("test")

	err := fs.Parse([]string{
		"-a", "127.0.0.1:6000",
		"-b", "http://localhost:5001",
		"-c", "/etc/clip.json",
		"--request-timeout", "2s",
		"--token-sign-key", "secret",
		"--token-issuer", "me",
		"--token-duration", "1h",
		"--write-interval", "50ms",
		"--serialize=false",
		"--shutdown-timeout", "4s",
		"--log-level", "info",
		"--log-file", "client.log",
	})
	require.NoError(t, err)

	cfg := flags.Config()

	assert.Equal(t, "127.0.0.1:6000", cfg.Relay.HTTPAddress)
	assert.Equal(t, "http://localhost:5001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/etc/clip.json", cfg.JSONFilePath)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.Relay.TokenSignKey)
	assert.Equal(t, "me", cfg.Relay.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Relay.TokenDuration)
	assert.Equal(t, 4*time.Second, cfg.Relay.ShutdownTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Sanitizer.WriteInterval)
	require.NotNil(t, cfg.Sanitizer.Serialize)
	assert.False(t, *cfg.Sanitizer.Serialize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "client.log", cfg.Log.File)
}

// TestRegisterFlags_Unset verifies that flags missing from the command line
// produce zero values, so env and defaults are not overridden.
func TestRegisterFlags_Unset(t *testing.T) {
	fs, flags := NewFlagSet("test")
	require.NoError(t, fs.Parse(nil))

	cfg := flags.Config()

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_InvalidAddress(t *testing.T) {
	fs, _ := NewFlagSet("test")
	err := fs.Parse([]string{"-a", "not-an-address"})
	require.Error(t, err)
}
