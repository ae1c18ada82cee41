// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [SettingsStorage]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSettingsFileNotFound is returned when the settings path does not
	// exist. The underlying fs.ErrNotExist stays in the chain.
	ErrSettingsFileNotFound = errors.New("settings file not found")

	// ErrReadSettingsFile is returned for any other failure to open or read
	// the settings file (permissions, path is a directory, ...).
	ErrReadSettingsFile = errors.New("error reading settings file")

	// ErrDecodeSettings is returned when the file is not valid JSON or its
	// validated content cannot be decoded into the typed model.
	ErrDecodeSettings = errors.New("error decoding settings")

	// ErrInvalidUTF8 is wrapped together with ErrDecodeSettings when the
	// file contains byte sequences that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)
