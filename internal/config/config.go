// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container shared by the
// relay daemon and the client. It is populated by merging values from a .env
// file, environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Relay holds the settings of the local relay HTTP surface.
	Relay Relay `envPrefix:"RELAY_"`

	// Sanitizer holds the clipboard sanitization parameters.
	Sanitizer Sanitizer `envPrefix:"SANITIZER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings used to reach the password-manager backend.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend round trip, including the decrypt
	// call a trigger blocks on.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Relay holds settings of the loopback HTTP surface that trigger sources
// (e.g. a browser extension content script) call.
type Relay struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: RELAY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the HS256 key for relay bearer tokens. When empty the
	// relay accepts unauthenticated callers.
	// Env: RELAY_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim required on relay tokens.
	// Env: RELAY_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued relay tokens.
	// Env: RELAY_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ShutdownTimeout bounds graceful shutdown of the relay server.
	// Env: RELAY_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Sanitizer holds clipboard sanitization parameters.
type Sanitizer struct {
	// WriteInterval is the pause between two consecutive decoy writes.
	// Env: SANITIZER_WRITE_INTERVAL
	WriteInterval time.Duration `env:"WRITE_INTERVAL"`

	// Serialize makes whole sanitize cycles mutually exclusive so decoy
	// writes of overlapping cycles never interleave. Nil means default (on).
	// Env: SANITIZER_SERIALIZE
	Serialize *bool `env:"SERIALIZE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the client log file path. The relay always logs to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// SerializeSanitize reports whether sanitize cycles must be serialized.
func (s Sanitizer) SerializeSanitize() bool {
	return s.Serialize == nil || *s.Serialize
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. .env file in the working directory (never overrides real env vars)
//  2. Environment variables
//  3. Command-line flags registered via [RegisterFlags]
//  4. JSON file (path resolved from sources 2 and 3)
//
// Remaining zero fields are filled from [Defaults]. flags may be nil.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// Defaults returns the configuration applied beneath every other source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 10 * time.Second,
		},
		Relay: Relay{
			HTTPAddress:     "127.0.0.1:5055",
			TokenIssuer:     "go-clip-keeper",
			TokenDuration:   30 * 24 * time.Hour,
			ShutdownTimeout: 10 * time.Second,
		},
		Sanitizer: Sanitizer{
			WriteInterval: 100 * time.Millisecond,
		},
		Log: Log{
			Level: "debug",
		},
	}
}

// NewFlagSet is a convenience for binaries that do not use cobra.
func NewFlagSet(name string) (*pflag.FlagSet, *Flags) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return fs, RegisterFlags(fs)
}
