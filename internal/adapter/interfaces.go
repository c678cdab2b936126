// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer towards the password-manager
// backend.
//
// The primary abstraction is [BackendAdapter], which decouples the protocol
// services from HTTP. The package ships a resty-based implementation
// ([NewHTTPBackendAdapter]).
//
// Non-2xx replies are mapped by mapHTTPError to a [*BackendError] wrapping a
// sentinel so callers can use [errors.Is] (e.g. [ErrInternalServerError] for
// 500) and [errors.As] to read the backend-supplied message. Transport
// failures wrap [ErrUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the password-manager backend.
// Each method performs exactly one HTTP round trip and never retries.
type BackendAdapter interface {
	// Address returns the backend base URL.
	Address() string

	// Decrypt posts payload to POST /api/decrypt-from-clipboard.
	//
	// A backend rejection is not an error: a 200 with success=false is
	// returned as-is, and a non-2xx reply carrying a JSON "error" field is
	// returned as a DecryptResponse with Success=false and that message.
	// Any other failure (unreachable, timeout, non-2xx without an error
	// message, undecodable body) is returned as an error.
	Decrypt(ctx context.Context, payload string) (models.DecryptResponse, error)

	// Sanitize requests a batch of decoy strings from
	// POST /api/sanitize-clipboard. The request has no body.
	Sanitize(ctx context.Context) (models.SanitizeResponse, error)

	// Status fetches GET /api/status.
	Status(ctx context.Context) (models.BackendStatus, error)

	// GeneratePassword asks the backend to generate and hold a new random
	// password of the given length via POST /api/generate-password.
	GeneratePassword(ctx context.Context, length int) (models.GenerateResponse, error)

	// EncryptPassword asks the backend to encrypt the password it currently
	// holds via POST /api/encrypt-password.
	EncryptPassword(ctx context.Context) (models.EncryptResponse, error)

	// EncryptedPayload fetches the ciphertext ready to be placed on the
	// clipboard from GET /api/copy-to-clipboard.
	EncryptedPayload(ctx context.Context) (models.EncryptedPayload, error)
}
