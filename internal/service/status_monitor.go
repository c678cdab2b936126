package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const defaultStatusInterval = 30 * time.Second

type statusMonitor struct {
	status StatusService

	mu     sync.Mutex
	cancel context.CancelFunc
	last   models.StatusReport
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewStatusMonitor creates a StatusMonitor that calls status.Check on a
// ticker. The monitor is idle until Start is called.
func NewStatusMonitor(status StatusService, logger *logger.Logger) StatusMonitor {
	return &statusMonitor{status: status, logger: logger}
}

// Start implements StatusMonitor. The first check runs immediately; later
// ones run every interval until ctx is cancelled or Stop is called.
func (m *statusMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultStatusInterval
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		m.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.check(jobCtx)
			}
		}
	}()
}

// Stop implements StatusMonitor. Safe to call when the monitor is not
// running.
func (m *statusMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// Last implements StatusMonitor.
func (m *statusMonitor) Last() models.StatusReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *statusMonitor) check(ctx context.Context) {
	report := m.status.Check(ctx)

	m.mu.Lock()
	prev := m.last
	m.last = report
	m.mu.Unlock()

	switch {
	case report.Connected && !prev.Connected:
		m.logger.Info().Str("address", report.Address).Msg("backend reachable")
	case !report.Connected && (prev.Connected || prev.Address == ""):
		m.logger.Warn().Str("address", report.Address).Str("error", report.Error).Msg("backend unreachable")
	}
}
