// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// relay handlers, the services and the terminal UI.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies, notifications or log entries. Keeping them in one place keeps the
// wording consistent between the relay and the client.
package app

const (
	// MsgCouldNotReadClipboard prefixes the cause when the clipboard payload
	// cannot be read at trigger time.
	MsgCouldNotReadClipboard = "could not read clipboard"

	// MsgApplyFailed prefixes the cause when a decrypted secret could not be
	// applied to the target field.
	MsgApplyFailed = "apply"

	// MsgPasswordPasted is shown after a successful apply. It takes the
	// plaintext length.
	MsgPasswordPasted = "Password decrypted and pasted (%d chars)"

	// MsgCannotReachBackend is shown when the backend status check fails at
	// transport level.
	MsgCannotReachBackend = "Cannot reach backend at %s"

	// MsgInvalidDataProvided is returned when a relay request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected relay failure
	// occurs that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a relay bearer token is well formed
	// but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a relay bearer token is
	// missing, malformed or fails verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSanitizeScheduled is the body of a 202 reply to a sanitize request.
	MsgSanitizeScheduled = "sanitize scheduled"

	// MsgEncryptedCopied is shown after the encrypted password was placed on
	// the clipboard.
	MsgEncryptedCopied = "Encrypted password copied to clipboard"

	// MsgSanitizeFinished is shown once a sanitize pass started from the
	// client has returned.
	MsgSanitizeFinished = "Clipboard sanitize pass finished"

	// MsgLengthTooSmall is the backend reply to a password generation
	// request with a non-positive length.
	MsgLengthTooSmall = "Length must be at least 1"

	// MsgNoPasswordToEncrypt is the backend reply to an encrypt request made
	// before any password was generated.
	MsgNoPasswordToEncrypt = "No password to encrypt. Generate one first."

	// MsgNoEncryptedPassword is the backend reply when no encrypted password
	// is available to copy.
	MsgNoEncryptedPassword = "No encrypted password. Encrypt one first."
)
