package service

import (
	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
)

type Services struct {
	Relay         Relay
	Sanitizer     Sanitizer
	Cycle         CycleService
	Status        StatusService
	StatusMonitor StatusMonitor
	Vault         VaultService
	Token         TokenService
}

func NewServices(cfg *config.StructuredConfig, backend adapter.BackendAdapter, clip clipboard.Clipboard, group *workers.Group, logger *logger.Logger) *Services {
	relay := NewRelay(backend, logger)
	sanitizer := NewSanitizer(backend, clip, cfg.Sanitizer, logger)
	status := NewStatusService(backend, logger)

	return &Services{
		Relay:         relay,
		Sanitizer:     sanitizer,
		Cycle:         NewCycle(clip, relay, sanitizer, group, logger),
		Status:        status,
		StatusMonitor: NewStatusMonitor(status, logger),
		Vault:         NewVaultService(backend, clip, logger),
		Token:         NewTokenService(cfg.Relay),
	}
}
