// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackendStatus is the reply of GET /api/status.
type BackendStatus struct {
	HasPassword    bool `json:"has_password"`
	HasEncrypted   bool `json:"has_encrypted"`
	PasswordLength int  `json:"password_length,omitempty"`
}

// StatusReport describes backend reachability as seen from this side.
type StatusReport struct {
	// Connected is false when the status request failed at transport level
	// or the backend answered with a non-2xx status.
	Connected bool `json:"connected"`

	// Address is the backend base URL that was checked.
	Address string `json:"address"`

	// Backend holds the decoded status. Zero value when not connected.
	Backend BackendStatus `json:"backend"`

	// Error explains why the backend is not connected.
	Error string `json:"error,omitempty"`
}
