// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDecryptError is reported when the backend rejects a payload without
// giving a reason.
const DefaultDecryptError = "Decryption failed"

// DecryptRequest is the body of POST /api/decrypt-from-clipboard.
type DecryptRequest struct {
	// Data is the clipboard payload exactly as it was read. The backend is
	// authoritative on whether it is valid ciphertext.
	Data string `json:"data"`
}

// DecryptResponse is the backend reply to a decrypt request.
//
// The backend answers failures either with 200 and success=false or with a
// non-2xx status carrying only the error field; both shapes decode here.
type DecryptResponse struct {
	Success bool   `json:"success"`
	Masked  string `json:"masked,omitempty"`
	Length  int    `json:"length,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// DecryptResult is what a trigger source receives for one decrypt attempt.
// It is never persisted; the caller consumes it immediately.
type DecryptResult struct {
	// Success mirrors the backend's success flag. It is false for every
	// transport failure.
	Success bool `json:"success"`

	// SecretMasked is the masked secret to apply to the target field.
	// Set only when Success is true.
	SecretMasked string `json:"masked,omitempty"`

	// Length is the length of the plaintext secret.
	// Set only when Success is true.
	Length int `json:"length,omitempty"`

	// Error carries the backend message or the transport failure cause.
	// Set only when Success is false.
	Error string `json:"error,omitempty"`
}

// FailedDecrypt builds an unsuccessful DecryptResult with the given message.
func FailedDecrypt(message string) DecryptResult {
	if message == "" {
		message = DefaultDecryptError
	}
	return DecryptResult{Success: false, Error: message}
}
