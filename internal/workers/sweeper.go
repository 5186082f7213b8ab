// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package workers

import (
	"context"
	"time"

	"github.com/avasilcai/school-admin/internal/logger"
)

// TokenPurger deletes dead password-reset tokens and reports how many rows
// were removed. Satisfied by the reset-token repository.
type TokenPurger interface {
	PurgeDead(ctx context.Context) (int64, error)
}

// TokenSweeper periodically purges expired and consumed password-reset
// tokens. Dead tokens never validate, so the sweep only keeps the table
// small; a missed run is harmless.
type TokenSweeper struct {
	purger   TokenPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewTokenSweeper constructs a sweeper that purges via the given TokenPurger
// every interval.
func NewTokenSweeper(purger TokenPurger, interval time.Duration, logger *logger.Logger) *TokenSweeper {
	return &TokenSweeper{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
// The first sweep happens right away; subsequent sweeps follow the ticker.
func (s *TokenSweeper) Run() {
	go func() {
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			s.sweep()
		}
	}()
}

func (s *TokenSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := s.purger.PurgeDead(ctx)
	if err != nil {
		s.logger.Err(err).Msg("reset token sweep failed")
		return
	}

	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("purged dead reset tokens")
	}
}
