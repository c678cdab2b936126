package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/handler"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
)

type server struct {
	httpServer *httpServer
	background *workers.Group
	drainFor   time.Duration

	// ready is closed once the listener is bound.
	ready chan struct{}

	logger *logger.Logger
}

// NewServer builds the relay server. background holds detached sanitize
// passes; it is drained on shutdown for at most cfg.ShutdownTimeout.
func NewServer(handlers *handler.Handlers, cfg config.Relay, background *workers.Group, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		drainFor:   cfg.ShutdownTimeout,
		ready:      make(chan struct{}),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.drain()
}

func (s *server) drain() {
	if s.background == nil {
		return
	}

	ctx := context.Background()
	if s.drainFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.drainFor)
		defer cancel()
	}

	if !s.background.WaitContext(ctx) {
		s.logger.Warn().Msg("sanitize passes still running at exit")
	}
}

func (s *server) run(parent context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}
	if err := s.httpServer.listen(); err != nil {
		return err
	}
	close(s.ready)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.logger.Info().Str("address", s.httpServer.listener.Addr().String()).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
