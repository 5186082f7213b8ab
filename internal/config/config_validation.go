// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vasilcai

package config

import "time"

// Defaults applied by validate when the merged configuration leaves a
// lifecycle duration unset.
const (
	defaultTokenDuration      = time.Hour
	defaultResetTokenDuration = 10 * time.Minute
	defaultSweepInterval      = time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional durations.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = defaultResetTokenDuration
	}

	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = defaultSweepInterval
	}

	return nil
}
