// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/settings2markdown/models"
)

// SettingsStorage loads settings documents exported by the extension.
type SettingsStorage interface {
	// LoadSettings reads, validates and decodes the settings file at path.
	LoadSettings(ctx context.Context, path string) (*models.Settings, error)
}
