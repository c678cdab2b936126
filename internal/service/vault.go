package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type vaultService struct {
	adapter   adapter.BackendAdapter
	clipboard clipboard.Clipboard

	logger *logger.Logger
}

// NewVaultService creates a VaultService. clip receives the encrypted
// password on CopyEncrypted.
func NewVaultService(a adapter.BackendAdapter, clip clipboard.Clipboard, logger *logger.Logger) VaultService {
	return &vaultService{adapter: a, clipboard: clip, logger: logger}
}

// Generate implements VaultService.
func (v *vaultService) Generate(ctx context.Context, length int) (models.GenerateResponse, error) {
	if length < 1 {
		return models.GenerateResponse{}, ErrInvalidLength
	}

	resp, err := v.adapter.GeneratePassword(ctx, length)
	if err != nil {
		return models.GenerateResponse{}, mapAdapterError(err)
	}
	if !resp.Success {
		return models.GenerateResponse{}, fmt.Errorf("%w: %s", ErrBackendRejected, resp.Error)
	}

	return resp, nil
}

// Encrypt implements VaultService.
func (v *vaultService) Encrypt(ctx context.Context) (models.EncryptResponse, error) {
	resp, err := v.adapter.EncryptPassword(ctx)
	if err != nil {
		return models.EncryptResponse{}, mapAdapterError(err)
	}
	if !resp.Success {
		return models.EncryptResponse{}, fmt.Errorf("%w: %s", ErrBackendRejected, resp.Error)
	}

	return resp, nil
}

// CopyEncrypted implements VaultService.
func (v *vaultService) CopyEncrypted(ctx context.Context) (models.EncryptedPayload, error) {
	payload, err := v.adapter.EncryptedPayload(ctx)
	if err != nil {
		return models.EncryptedPayload{}, mapAdapterError(err)
	}
	if !payload.Success || payload.Data == "" {
		return models.EncryptedPayload{}, ErrNoEncryptedPassword
	}

	if err = v.clipboard.WriteText(ctx, payload.Data); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("write encrypted password to clipboard: %w", err)
	}
	v.logger.Debug().Int("size", len(payload.Data)).Msg("encrypted password copied")

	return payload, nil
}
