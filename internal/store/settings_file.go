// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/settings2markdown/internal/logger"
	"github.com/MKhiriev/settings2markdown/internal/validators"
	"github.com/MKhiriev/settings2markdown/models"
)

// settingsFileStorage is the default implementation of [SettingsStorage].
// It reads a whole JSON file from the local filesystem, checks its structure
// with a [validators.Validator] and decodes it into [models.Settings].
type settingsFileStorage struct {
	validator validators.Validator
	logger    *logger.Logger
}

// NewSettingsFileStorage constructs a [SettingsStorage] backed by local files.
func NewSettingsFileStorage(validator validators.Validator, logger *logger.Logger) SettingsStorage {
	return &settingsFileStorage{
		validator: validator,
		logger:    logger,
	}
}

// LoadSettings opens path, reads it fully and closes it before any
// parsing happens.
//
// Errors:
//   - ErrSettingsFileNotFound when path does not exist;
//   - ErrReadSettingsFile for other IO failures;
//   - ErrDecodeSettings when the content is not valid UTF-8 or not valid JSON;
//   - validators.ErrInvalidSettings when rows or a row record is malformed.
func (s *settingsFileStorage) LoadSettings(ctx context.Context, path string) (*models.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("path", path).Int("bytes", len(raw)).Msg("settings file read")

	// encoding/json silently replaces invalid sequences with U+FFFD.
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w in %s: %w", ErrDecodeSettings, path, ErrInvalidUTF8)
	}

	var document any
	if err = json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrDecodeSettings, path, err)
	}

	if err = s.validator.Validate(ctx, document); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	var settings models.Settings
	if err = json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrDecodeSettings, path, err)
	}
	if settings.Rows == nil {
		settings.Rows = map[string]models.RowSettings{}
	}

	s.logger.Debug().Int("rows", len(settings.Rows)).Msg("settings decoded")
	return &settings, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSettingsFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadSettingsFile, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSettingsFile, err)
	}
	return raw, nil
}
