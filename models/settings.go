// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings is the typed form of a settings document exported from the
// link-redirect extension. Only the rows mapping is read; any other
// top-level keys stored by the extension are ignored during decoding.
type Settings struct {
	// Rows maps a unique row name (the context menu title) to its record.
	Rows map[string]RowSettings `json:"rows"`
}

// RowSettings is a single record under the "rows" key.
type RowSettings struct {
	// URL is the redirect URL, possibly containing %u-style formats.
	URL string `json:"url"`

	// EnableURL is the secondary URL shown in the "Enable URL" column.
	// An empty string means the row has none.
	EnableURL string `json:"enableURL"`

	// Enabled mirrors the extension's per-row switch. Nil when the key is
	// absent from the document, which counts as enabled.
	Enabled *bool `json:"enabled,omitempty"`
}

// IsEnabled reports whether the row is switched on. Rows without an
// explicit "enabled" key are treated as enabled.
func (r RowSettings) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Row is a named settings entry derived from [Settings] for rendering.
type Row struct {
	Name      string
	URL       string
	EnableURL string
	Enabled   bool
}
