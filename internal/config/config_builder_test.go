package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.True(t, cfg.Sanitizer.SerializeSanitize())
	assert.Equal(t, 100*time.Millisecond, cfg.Sanitizer.WriteInterval)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a source appended later overrides
// an earlier one while untouched fields survive.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:5000"}, Log: Log{Level: "warn"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:5000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_SerializeOverride(t *testing.T) {
	off := false
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Sanitizer: Sanitizer{Serialize: &off}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.Sanitizer.SerializeSanitize())
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		want error
	}{
		{
			name: "backend without scheme",
			cfg:  &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:5000"}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative request timeout",
			cfg:  &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative write interval",
			cfg:  &StructuredConfig{Sanitizer: Sanitizer{WriteInterval: -time.Millisecond}},
			want: ErrInvalidSanitizerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeTempFile(t, `{"adapter": {"address": "http://json:5000"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter:      Adapter{HTTPAddress: "http://env:5000"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://json:5000", cfg.Adapter.HTTPAddress)
}

func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: filepath.Join(t.TempDir(), "absent.json"),
	})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_DoesNotOverrideEnv проверяет, что .env не перетирает уже
// заданные переменные окружения.
func TestWithDotEnv_DoesNotOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "http://real:5000"})
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADAPTER_ADDRESS=http://dotenv:5000\nLOG_LEVEL=error\n"), 0o600))

	cfg, err := newConfigBuilder().withDotEnv(path).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "http://real:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "error", cfg.Log.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":          "http://env:5000",
		"SANITIZER_WRITE_INTERVAL": "20ms",
	})

	fs, flags := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"-b", "http://flag:5000"}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, "http://flag:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Millisecond, cfg.Sanitizer.WriteInterval)
}
