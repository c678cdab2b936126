// Package utils provides general-purpose helpers shared across the
// application: context keys, JSON response writing, the resty client
// wrapper, identifiers and relay JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys used by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the relay auth middleware stores the
// authenticated caller (the token subject).
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext returns the authenticated relay caller stored in ctx.
// ok is false when the value is missing or has an unexpected type.
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok
}
