package tui

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. Detached sanitize passes started from
// the form are awaited before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newTriggerModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	t.logger.Debug().Msg("waiting for background sanitize passes")
	t.services.Cycle.Wait()

	if err != nil {
		return err
	}
	if _, ok := finalModel.(triggerModel); !ok {
		return tea.ErrProgramKilled
	}

	return nil
}
