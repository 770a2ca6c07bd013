// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 1 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" ||
		cfg.Server.RequestTimeout < 0 ||
		cfg.Server.ReadTimeout < 0 ||
		cfg.Server.WriteTimeout < 0 ||
		cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Name == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
