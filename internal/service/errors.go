package service

import "errors"

var (
	ErrInvalidLocale      = errors.New("invalid collation locale")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrNoSettingsProvided = errors.New("no settings provided")
)
