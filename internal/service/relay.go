package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type relay struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

// NewRelay creates a Relay that sends payloads to the backend through a.
func NewRelay(a adapter.BackendAdapter, logger *logger.Logger) Relay {
	return &relay{adapter: a, logger: logger}
}

// Decrypt implements Relay. The payload is passed through unchanged; the
// backend decides whether it is valid ciphertext.
func (r *relay) Decrypt(ctx context.Context, payload string) (result models.DecryptResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Interface("panic", rec).Msg("decrypt relay panicked")
			result = models.FailedDecrypt(fmt.Sprintf("%v", rec))
		}
	}()

	resp, err := r.adapter.Decrypt(ctx, payload)
	if err != nil {
		r.logger.Debug().Err(err).Msg("decrypt request failed")
		return models.FailedDecrypt(err.Error())
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		r.logger.Debug().Str("reason", msg).Msg("backend rejected decrypt")
		return models.FailedDecrypt(msg)
	}

	return models.DecryptResult{
		Success:      true,
		SecretMasked: resp.Masked,
		Length:       resp.Length,
	}
}
