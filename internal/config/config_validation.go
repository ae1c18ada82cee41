// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/settings2markdown/models"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// The settings path is not required when only build info is requested.
// Collation locales are checked later, when the collator is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.ShowVersion {
		return nil
	}

	if cfg.SettingsPath == "" {
		return ErrMissingSettingsPath
	}

	if _, ok := models.ParseOutputFormat(cfg.Render.Format); !ok {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidRenderConfigs, cfg.Render.Format)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// OutputFormat returns the parsed render format. It must only be called on
// a validated config.
func (cfg *StructuredConfig) OutputFormat() models.OutputFormat {
	format, _ := models.ParseOutputFormat(cfg.Render.Format)
	return format
}
