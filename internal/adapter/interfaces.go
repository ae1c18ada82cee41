// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the destinations a rendered table is delivered
// to: standard output, a file on disk, and the system clipboard.
//
// The service layer only ever produces bytes; adapters decouple it from the
// concrete destination so that the app can be tested against in-memory
// writers and mocked clipboards.
package adapter

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Output is a destination for the rendered table.
type Output interface {
	io.Writer

	// Close releases the destination. Closing stdout is a no-op.
	Close() error

	// Name describes the destination for logs ("stdout" or the file path).
	Name() string
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	// WriteAll replaces the clipboard content with text.
	WriteAll(text string) error
}
