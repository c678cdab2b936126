package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/mock"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func badRequest(msg string) error {
	return adapter.NewBackendError(http.StatusBadRequest, msg)
}

func TestVaultService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().GeneratePassword(gomock.Any(), 16).
		Return(models.GenerateResponse{Success: true, Length: 16, Masked: "••••••••••••abcd"}, nil)

	got, err := service.NewVaultService(backend, clipboard.NewMemory(""), logger.Nop()).Generate(context.Background(), 16)

	require.NoError(t, err)
	assert.Equal(t, 16, got.Length)
}

func TestVaultService_Generate_InvalidLengthIsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)

	svc := service.NewVaultService(backend, clipboard.NewMemory(""), logger.Nop())

	for _, length := range []int{0, -5} {
		_, err := svc.Generate(context.Background(), length)
		assert.ErrorIs(t, err, service.ErrInvalidLength)
	}
}

func TestVaultService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		call func(svc service.VaultService, backend *mock.MockBackendAdapter) error
		want error
	}{
		{
			name: "encrypt before generate",
			call: func(svc service.VaultService, backend *mock.MockBackendAdapter) error {
				backend.EXPECT().EncryptPassword(gomock.Any()).Return(models.EncryptResponse{}, badRequest(app.MsgNoPasswordToEncrypt))
				_, err := svc.Encrypt(context.Background())
				return err
			},
			want: service.ErrNoPasswordToEncrypt,
		},
		{
			name: "copy before encrypt",
			call: func(svc service.VaultService, backend *mock.MockBackendAdapter) error {
				backend.EXPECT().EncryptedPayload(gomock.Any()).Return(models.EncryptedPayload{}, badRequest(app.MsgNoEncryptedPassword))
				_, err := svc.CopyEncrypted(context.Background())
				return err
			},
			want: service.ErrNoEncryptedPassword,
		},
		{
			name: "unreachable is passed through",
			call: func(svc service.VaultService, backend *mock.MockBackendAdapter) error {
				backend.EXPECT().EncryptPassword(gomock.Any()).Return(models.EncryptResponse{}, adapter.ErrUnreachable)
				_, err := svc.Encrypt(context.Background())
				return err
			},
			want: adapter.ErrUnreachable,
		},
		{
			name: "success false",
			call: func(svc service.VaultService, backend *mock.MockBackendAdapter) error {
				backend.EXPECT().GeneratePassword(gomock.Any(), 8).Return(models.GenerateResponse{Success: false, Error: "rng"}, nil)
				_, err := svc.Generate(context.Background(), 8)
				return err
			},
			want: service.ErrBackendRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mock.NewMockBackendAdapter(ctrl)
			svc := service.NewVaultService(backend, clipboard.NewMemory(""), logger.Nop())

			assert.ErrorIs(t, tt.call(svc, backend), tt.want)
		})
	}
}

func TestVaultService_CopyEncrypted_WritesClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().EncryptedPayload(gomock.Any()).
		Return(models.EncryptedPayload{Success: true, Data: "U2FsdGVkX1abc"}, nil)

	clip := clipboard.NewMemory("old")
	got, err := service.NewVaultService(backend, clip, logger.Nop()).CopyEncrypted(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "U2FsdGVkX1abc", got.Data)
	text, _ := clip.ReadText(context.Background())
	assert.Equal(t, "U2FsdGVkX1abc", text)
}

func TestVaultService_CopyEncrypted_ClipboardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	clip := mock.NewMockClipboard(ctrl)

	backend.EXPECT().EncryptedPayload(gomock.Any()).
		Return(models.EncryptedPayload{Success: true, Data: "U2FsdGVkX1abc"}, nil)
	clip.EXPECT().WriteText(gomock.Any(), "U2FsdGVkX1abc").Return(clipboard.ErrUnavailable)

	_, err := service.NewVaultService(backend, clip, logger.Nop()).CopyEncrypted(context.Background())

	assert.True(t, errors.Is(err, clipboard.ErrUnavailable))
}
