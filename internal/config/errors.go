package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings
	// (for example, a non-URL address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidRelayConfigs indicates invalid relay listener or token settings.
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidSanitizerConfigs indicates invalid sanitizer settings.
	ErrInvalidSanitizerConfigs = errors.New("invalid sanitizer configuration")
)
