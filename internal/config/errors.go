package config

import "errors"

// Errors returned by [GetStructuredConfig] when the command line or the
// merged configuration is incomplete or invalid.
var (
	// ErrMissingSettingsPath indicates that no positional settings file
	// argument was given.
	ErrMissingSettingsPath = errors.New("missing settings file argument")
	// ErrTooManyArguments indicates more than one positional argument.
	ErrTooManyArguments = errors.New("expected exactly one settings file argument")
	// ErrInvalidRenderConfigs indicates an unknown output format.
	ErrInvalidRenderConfigs = errors.New("invalid render configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

// IsArgumentCountError reports whether err comes from a missing or extra
// positional settings path, the cases where the usage text should be shown.
func IsArgumentCountError(err error) bool {
	return errors.Is(err, ErrMissingSettingsPath) || errors.Is(err, ErrTooManyArguments)
}
