package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

type sanitizer struct {
	adapter   adapter.BackendAdapter
	clipboard clipboard.Clipboard
	interval  time.Duration
	serialize bool

	// mu serializes whole sanitize passes when serialize is set.
	mu    sync.Mutex
	sleep func(time.Duration)

	logger *logger.Logger
}

// NewSanitizer creates a Sanitizer writing decoys to clip. cfg provides the
// pause between writes and whether overlapping passes are serialized.
func NewSanitizer(a adapter.BackendAdapter, clip clipboard.Clipboard, cfg config.Sanitizer, logger *logger.Logger) Sanitizer {
	return &sanitizer{
		adapter:   a,
		clipboard: clip,
		interval:  cfg.WriteInterval,
		serialize: cfg.SerializeSanitize(),
		sleep:     time.Sleep,
		logger:    logger,
	}
}

// Sanitize implements Sanitizer. Cancellation of ctx is not observed once
// the batch has been received: every item gets exactly one write attempt.
func (s *sanitizer) Sanitize(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Debug().Interface("panic", rec).Msg("sanitize panicked")
		}
	}()

	resp, err := s.adapter.Sanitize(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("sanitize request failed")
		return
	}
	if !resp.Success {
		s.logger.Debug().Str("reason", resp.Error).Msg("backend refused sanitize")
		return
	}

	if s.serialize {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	writeCtx := context.WithoutCancel(ctx)
	batch := resp.SanitizedStrings
	for i, item := range batch {
		if err = s.clipboard.WriteText(writeCtx, item); err != nil {
			s.logger.Debug().Err(err).Int("index", i).Msg("sanitize write failed")
		}
		if i < len(batch)-1 && s.interval > 0 {
			s.sleep(s.interval)
		}
	}

	s.logger.Debug().Int("writes", len(batch)).Msg("clipboard sanitized")
}
