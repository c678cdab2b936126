// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type cycle struct {
	clipboard clipboard.Clipboard
	relay     Relay
	sanitizer Sanitizer
	group     *workers.Group

	logger *logger.Logger
}

// NewCycle creates a CycleService. Detached sanitize passes are tracked by
// group so the caller can drain them before exiting.
func NewCycle(clip clipboard.Clipboard, relay Relay, sanitizer Sanitizer, group *workers.Group, logger *logger.Logger) CycleService {
	return &cycle{
		clipboard: clip,
		relay:     relay,
		sanitizer: sanitizer,
		group:     group,
		logger:    logger,
	}
}

// Run implements CycleService.
//
// The only blocking step is the decrypt round trip. Sanitize fires only
// after target.Apply succeeded, so the clipboard is never overwritten
// before the secret has been used.
func (c *cycle) Run(ctx context.Context, target Target) models.DecryptResult {
	cycleID := utils.NewID()
	log := c.logger.WithField("cycle_id", cycleID)
	observe := observerFor(target, cycleID)

	observe(models.CycleAwaitingDecrypt)

	payload, err := c.clipboard.ReadText(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("clipboard read failed")
		observe(models.CycleFailed)
		observe(models.CycleIdle)
		return models.FailedDecrypt(fmt.Sprintf("%s: %v", app.MsgCouldNotReadClipboard, err))
	}

	result := c.relay.Decrypt(ctx, payload)
	if !result.Success {
		log.Info().Str("reason", result.Error).Msg("decrypt failed")
		observe(models.CycleFailed)
		observe(models.CycleIdle)
		return result
	}

	if err = target.Apply(ctx, result); err != nil {
		log.Warn().Err(err).Msg("apply failed")
		observe(models.CycleFailed)
		observe(models.CycleIdle)
		return models.FailedDecrypt(fmt.Sprintf("%s: %v", app.MsgApplyFailed, err))
	}

	log.Info().Int("length", result.Length).Msg("secret applied")
	observe(models.CycleApplied)

	c.group.Go(ctx, func(ctx context.Context) {
		observe(models.CycleAwaitingSanitize)
		c.sanitizer.Sanitize(ctx)
		observe(models.CycleIdle)
	})

	return result
}

// DecryptClipboard implements CycleService.
func (c *cycle) DecryptClipboard(ctx context.Context, payload string) models.DecryptResult {
	if payload == "" {
		text, err := c.clipboard.ReadText(ctx)
		if err != nil {
			c.logger.Debug().Err(err).Msg("clipboard read failed")
			return models.FailedDecrypt(fmt.Sprintf("%s: %v", app.MsgCouldNotReadClipboard, err))
		}
		payload = text
	}

	return c.relay.Decrypt(ctx, payload)
}

// ScheduleSanitize implements CycleService.
func (c *cycle) ScheduleSanitize(ctx context.Context) {
	c.group.Go(ctx, c.sanitizer.Sanitize)
}

// Wait implements CycleService.
func (c *cycle) Wait() {
	c.group.Wait()
}

func observerFor(target Target, cycleID string) func(models.CycleState) {
	o, ok := target.(StateObserver)
	if !ok {
		return func(models.CycleState) {}
	}
	return func(state models.CycleState) {
		o.ObserveState(cycleID, state)
	}
}
