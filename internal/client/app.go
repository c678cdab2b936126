package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/tui"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// App is the cobra-based client. Services are built lazily, after flags
// have been parsed, by the root command's PersistentPreRunE.
type App struct {
	buildInfo models.AppBuildInfo
	flags     *config.Flags
	root      *cobra.Command

	services *service.Services
	address  string
	logger   *logger.Logger

	openURL func(url string) error
}

func NewApp(buildInfo models.AppBuildInfo) *App {
	a := &App{
		buildInfo: buildInfo,
		logger:    logger.Nop(),
		openURL:   browser.OpenURL,
	}

	root := &cobra.Command{
		Use:   "go-clip-client",
		Short: "Decrypt and sanitize clipboard passwords through the backend",
		Long: `go-clip-client relays encrypted clipboard content to the password backend.

Without a subcommand it opens the terminal form: focus a field and press
enter or ctrl+v to decrypt the clipboard into it. After every successful
paste the clipboard is overwritten with decoy strings.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
		RunE:              a.runTUI,
	}
	a.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.decryptCommand(),
		a.sanitizeCommand(),
		a.statusCommand(),
		a.copyCommand(),
		a.generateCommand(),
		a.encryptCommand(),
		a.openCommand(),
		a.tokenCommand(),
		a.versionCommand(),
	)
	a.root = root

	return a
}

// Run executes the command selected by os.Args. SIGINT and SIGTERM cancel
// the command context; detached sanitize passes still run to completion.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.root.ExecuteContext(ctx)
}

func (a *App) prepare(_ *cobra.Command, _ []string) error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	a.logger = logger.NewClientLogger("go-clip-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create backend adapter: %w", err)
	}

	a.address = backend.Address()
	a.services = service.NewServices(cfg, backend, clipboard.NewSystemClipboard(), &workers.Group{}, a.logger)

	a.logger.Debug().Str("backend", a.address).Msg("client services are ready")
	return nil
}

func (a *App) runTUI(cmd *cobra.Command, _ []string) error {
	return tui.New(a.services, a.buildInfo, a.logger).Run(cmd.Context())
}
