// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "S2MD_"

// StructuredConfig is the top-level configuration container for
// settings2markdown. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Render controls ordering, filtering and format of the table.
	Render Render `envPrefix:"RENDER_"`

	// Output controls where the rendered table goes.
	Output Output `envPrefix:"OUTPUT_"`

	// Log controls diagnostic output on stderr.
	Log Log `envPrefix:"LOG_"`

	// SettingsPath is the settings document to convert. Only the single
	// positional command-line argument sets it.
	SettingsPath string

	// ShowVersion asks the binary to print build info and exit.
	// Only the -version flag sets it.
	ShowVersion bool

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: S2MD_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Render holds table rendering options.
type Render struct {
	// Locale is the collation locale for row names: a BCP 47 tag, a POSIX
	// locale name, or "C" for byte order.
	// Env: S2MD_RENDER_LOCALE
	Locale string `env:"LOCALE"`

	// Format is the output format, "markdown" or "html".
	// Env: S2MD_RENDER_FORMAT
	Format string `env:"FORMAT"`

	// OnlyEnabled drops rows whose "enabled" key is false.
	// Env: S2MD_RENDER_ONLY_ENABLED
	OnlyEnabled bool `env:"ONLY_ENABLED"`
}

// Output holds destinations for the rendered table.
type Output struct {
	// Path is a file to write instead of stdout. Empty means stdout.
	// Env: S2MD_OUTPUT_PATH
	Path string `env:"PATH"`

	// Clipboard additionally copies the rendered table to the system clipboard.
	// Env: S2MD_OUTPUT_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: S2MD_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// DefaultConfig returns the built-in defaults, the lowest-priority source.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Render: Render{
			Locale: "und",
			Format: "markdown",
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration for
// one run. args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
