// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSettings = errors.New("invalid settings document")
)

// Issue is one structural failure found in a settings document.
type Issue struct {
	// Location is a JSON pointer to the offending value ("" is the document root).
	Location string
	// Message describes what is wrong at Location.
	Message string
}

// String renders the issue as "#/pointer: message".
func (i Issue) String() string {
	location := "#" + strings.TrimSpace(i.Location)
	if i.Message == "" {
		return location
	}
	return fmt.Sprintf("%s: %s", location, i.Message)
}

// SettingsValidationError carries every [Issue] found in one document.
// It unwraps to [ErrInvalidSettings].
type SettingsValidationError struct {
	Issues []Issue
	Cause  error
}

func (e *SettingsValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", ErrInvalidSettings, e.Cause)
		}
		return ErrInvalidSettings.Error()
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSettings, strings.Join(parts, "; "))
}

func (e *SettingsValidationError) Unwrap() error {
	return ErrInvalidSettings
}

// Issues extracts validation issues from err. It returns nil when err does
// not carry a [SettingsValidationError].
func Issues(err error) []Issue {
	var validationErr *SettingsValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return validationErr.Issues
	}
	return nil
}
