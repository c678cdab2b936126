package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"adapter": {"address": "http://localhost:5000", "request_timeout": "7s"},
		"relay": {
			"address": "127.0.0.1:5055",
			"token_sign_key": "k",
			"token_issuer": "iss",
			"token_duration": "2h",
			"shutdown_timeout": "1s"
		},
		"sanitizer": {"write_interval": "150ms", "serialize": false},
		"log": {"level": "error", "file": "x.log"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "127.0.0.1:5055", cfg.Relay.HTTPAddress)
	assert.Equal(t, "k", cfg.Relay.TokenSignKey)
	assert.Equal(t, "iss", cfg.Relay.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Relay.TokenDuration)
	assert.Equal(t, time.Second, cfg.Relay.ShutdownTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.Sanitizer.WriteInterval)
	require.NotNil(t, cfg.Sanitizer.Serialize)
	assert.False(t, *cfg.Sanitizer.Serialize)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempFile(t, `{"adapter": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"100ms"`, want: 100 * time.Millisecond},
		{name: "nanoseconds", input: `1000000`, want: time.Millisecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
