package service

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type statusService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

// NewStatusService creates a StatusService backed by a.
func NewStatusService(a adapter.BackendAdapter, logger *logger.Logger) StatusService {
	return &statusService{adapter: a, logger: logger}
}

// Check implements StatusService.
func (s *statusService) Check(ctx context.Context) models.StatusReport {
	report := models.StatusReport{Address: s.adapter.Address()}

	status, err := s.adapter.Status(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("status check failed")
		report.Error = err.Error()
		return report
	}

	report.Connected = true
	report.Backend = status
	return report
}
