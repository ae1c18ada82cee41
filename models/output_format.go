// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// OutputFormat selects how the rows table is rendered.
type OutputFormat string

const (
	// FormatMarkdown renders a pipe table, one line per row.
	FormatMarkdown OutputFormat = "markdown"

	// FormatHTML renders the same pipe table converted to an HTML <table>.
	FormatHTML OutputFormat = "html"
)

// ParseOutputFormat normalizes s into a known [OutputFormat].
// The second return value is false for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown, "md":
		return FormatMarkdown, true
	case FormatHTML:
		return FormatHTML, true
	}
	return "", false
}
