// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// RelayToken is a signed bearer token that authorizes a caller of the relay
// HTTP surface (for example a browser extension content script).
type RelayToken struct {
	*jwt.Token

	// SignedString is the compact serialized form sent in the
	// Authorization header.
	SignedString string

	// Caller is the subject the token was issued to.
	Caller string
}
