// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var backendErr *adapter.BackendError
	if !errors.As(err, &backendErr) {
		return err
	}

	if errors.Is(err, adapter.ErrBadRequest) {
		switch backendErr.Message {
		case app.MsgLengthTooSmall:
			return ErrInvalidLength
		case app.MsgNoPasswordToEncrypt:
			return ErrNoPasswordToEncrypt
		case app.MsgNoEncryptedPassword:
			return ErrNoEncryptedPassword
		}
	}

	return err
}
