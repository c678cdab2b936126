package service_test

import (
	"testing"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/mock"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewServices_WiresEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := config.Defaults()

	svcs := service.NewServices(cfg, mock.NewMockBackendAdapter(ctrl), clipboard.NewMemory(""), &workers.Group{}, logger.Nop())

	assert.NotNil(t, svcs.Relay)
	assert.NotNil(t, svcs.Sanitizer)
	assert.NotNil(t, svcs.Cycle)
	assert.NotNil(t, svcs.Status)
	assert.NotNil(t, svcs.StatusMonitor)
	assert.NotNil(t, svcs.Vault)
	assert.NotNil(t, svcs.Token)
	assert.False(t, svcs.Token.Enabled())
}
