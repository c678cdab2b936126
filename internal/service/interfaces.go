// Package service implements the clipboard decrypt and sanitize protocol on
// top of the backend adapter and the clipboard.
//
// A trigger runs one cycle: the clipboard payload is relayed to the backend
// for decryption, the result is applied to the target, and a sanitize pass
// then overwrites the clipboard with decoys in the background.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Relay forwards a clipboard payload to the backend for decryption.
type Relay interface {
	// Decrypt issues exactly one decrypt request for payload and returns its
	// outcome. It never returns an error: transport failures are folded into
	// a DecryptResult with Success=false and the cause in Error.
	Decrypt(ctx context.Context, payload string) models.DecryptResult
}

// Sanitizer overwrites the clipboard with a batch of backend-provided decoys.
type Sanitizer interface {
	// Sanitize fetches a batch and writes every item to the clipboard in
	// order, pausing between writes. Failures are logged and swallowed.
	Sanitize(ctx context.Context)
}

// Target is the field a decrypted secret is applied to.
type Target interface {
	// Apply receives a successful DecryptResult. A non-nil error fails the
	// cycle and suppresses sanitize.
	Apply(ctx context.Context, result models.DecryptResult) error
}

// StateObserver may be implemented by a Target to follow cycle transitions.
// ObserveState can be called from the detached sanitize goroutine.
type StateObserver interface {
	ObserveState(cycleID string, state models.CycleState)
}

// CycleService drives one trigger through the decrypt-then-sanitize cycle.
type CycleService interface {
	// Run reads the clipboard, decrypts it through the Relay and applies the
	// result to target. It returns once the cycle is Applied or Failed; on
	// Applied a sanitize pass is launched detached.
	Run(ctx context.Context, target Target) models.DecryptResult

	// DecryptClipboard decrypts payload, or the current clipboard text when
	// payload is empty, without applying it or sanitizing afterwards.
	DecryptClipboard(ctx context.Context, payload string) models.DecryptResult

	// ScheduleSanitize launches a detached sanitize pass and returns
	// immediately.
	ScheduleSanitize(ctx context.Context)

	// Wait blocks until every detached sanitize pass has finished.
	Wait()
}

// StatusService reports backend reachability.
type StatusService interface {
	// Check calls the backend status endpoint. It never fails: an
	// unreachable backend is reported with Connected=false.
	Check(ctx context.Context) models.StatusReport
}

// StatusMonitor periodically checks the backend and logs reachability
// changes.
type StatusMonitor interface {
	// Start launches the background check loop. It checks every interval,
	// defaulting to 30 seconds when interval is zero or negative. Any
	// previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited.
	Stop()

	// Last returns the most recent report, or a zero report before the first
	// check.
	Last() models.StatusReport
}

// VaultService exposes the backend's password helpers used to prepare a
// decrypt cycle.
type VaultService interface {
	// Generate asks the backend for a new password of the given length.
	// Lengths below 1 fail locally with ErrInvalidLength.
	Generate(ctx context.Context, length int) (models.GenerateResponse, error)

	// Encrypt asks the backend to encrypt the last generated password.
	Encrypt(ctx context.Context) (models.EncryptResponse, error)

	// CopyEncrypted fetches the encrypted password and writes it to the
	// clipboard, ready for a decrypt trigger.
	CopyEncrypted(ctx context.Context) (models.EncryptedPayload, error)
}

// TokenService issues and verifies relay bearer tokens.
type TokenService interface {
	// Enabled reports whether a signing key is configured.
	Enabled() bool

	// Issue signs a token for caller.
	Issue(caller string) (models.RelayToken, error)

	// Parse verifies tokenString and returns the token with its caller.
	Parse(tokenString string) (models.RelayToken, error)
}
