// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: backend address %q is not an http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Relay.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidRelayConfigs)
	}

	if cfg.Relay.TokenSignKey != "" && (cfg.Relay.TokenIssuer == "" || cfg.Relay.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidRelayConfigs)
	}

	if cfg.Sanitizer.WriteInterval < 0 {
		return fmt.Errorf("%w: negative write interval", ErrInvalidSanitizerConfigs)
	}

	return nil
}
