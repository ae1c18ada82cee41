// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	v, err := NewSettingsValidator()
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func TestSettingsValidator_ValidDocuments(t *testing.T) {
	v := newTestValidator(t)

	docs := map[string]string{
		"single row":        `{"rows": {"Example": {"url": "https://x", "enableURL": ""}}}`,
		"empty rows":        `{"rows": {}}`,
		"enabled flag":      `{"rows": {"A": {"url": "a", "enableURL": "b", "enabled": false}}}`,
		"extra top-level":   `{"rows": {}, "switch-to-opened-tab": true}`,
		"extra row members": `{"rows": {"A": {"url": "a", "enableURL": "", "icon": 1}}}`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, v.Validate(context.Background(), []byte(doc)))
		})
	}
}

func TestSettingsValidator_InvalidDocuments(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name         string
		doc          string
		wantLocation string
		wantMessage  string
	}{
		{
			name:         "missing rows",
			doc:          `{"row": {}}`,
			wantLocation: "",
			wantMessage:  "rows",
		},
		{
			name:         "rows is an array",
			doc:          `{"rows": []}`,
			wantLocation: "/rows",
			wantMessage:  "object",
		},
		{
			name:         "missing enableURL",
			doc:          `{"rows": {"A": {"url": "a"}}}`,
			wantLocation: "/rows/A",
			wantMessage:  "enableURL",
		},
		{
			name:         "missing url",
			doc:          `{"rows": {"A": {"enableURL": ""}}}`,
			wantLocation: "/rows/A",
			wantMessage:  "url",
		},
		{
			name:         "url is a number",
			doc:          `{"rows": {"A": {"url": 1, "enableURL": ""}}}`,
			wantLocation: "/rows/A/url",
			wantMessage:  "string",
		},
		{
			name:         "row is a string",
			doc:          `{"rows": {"A": "https://a"}}`,
			wantLocation: "/rows/A",
			wantMessage:  "object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings))

			issues := Issues(err)
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.wantLocation, issues[0].Location)
			assert.Contains(t, issues[0].Message, tt.wantMessage)
		})
	}
}

func TestSettingsValidator_FieldScoping(t *testing.T) {
	v := newTestValidator(t)
	doc := []byte(`{"rows": {"A": {"url": "a"}}}`)

	assert.NoError(t, v.Validate(context.Background(), doc, FieldRows))

	err := v.Validate(context.Background(), doc, FieldRowRecords)
	assert.ErrorIs(t, err, ErrInvalidSettings)

	err = v.Validate(context.Background(), doc, "colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSettingsValidator_InputTypes(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, json.RawMessage(`{"rows": {}}`)))
	assert.NoError(t, v.Validate(ctx, map[string]any{"rows": map[string]any{}}))

	err := v.Validate(ctx, 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	err = v.Validate(ctx, []byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestSettingsValidator_CanceledContext(t *testing.T) {
	v := newTestValidator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := v.Validate(ctx, []byte(`{"rows": {}}`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettingsValidationError_Error(t *testing.T) {
	err := &SettingsValidationError{Issues: []Issue{
		{Location: "", Message: "missing properties: 'rows'"},
		{Location: "/rows/A", Message: ""},
	}}

	assert.Equal(t, "invalid settings document: #: missing properties: 'rows'; #/rows/A", err.Error())
	assert.Nil(t, Issues(errors.New("plain")))
}
