// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SettingsValidator checks the structure of a raw settings document against
// compiled JSON schemas. It accepts the document as raw JSON bytes or as a
// value already decoded into generic JSON types (map[string]any, []any, ...).
type SettingsValidator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSettingsValidator compiles the settings schemas and returns the
// validator as the [Validator] interface.
func NewSettingsValidator() (Validator, error) {
	sources := map[string]string{
		FieldRows:       rowsSchema,
		FieldRowRecords: rowRecordsSchema,
	}

	schemas := make(map[string]*jsonschema.Schema, len(sources))
	for field, source := range sources {
		compiled, err := compileSchema(field+".json", source)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", field, err)
		}
		schemas[field] = compiled
	}

	return &SettingsValidator{schemas: schemas}, nil
}

// Validate checks doc against the schemas selected by fields. With no
// fields, the rows key is checked first and the row records second; the
// records are not inspected when the rows key itself is invalid.
//
// Returns ErrUnsupportedType for inputs that are neither raw JSON nor a
// value produced by encoding/json decoding into any, ErrUnknownField for unknown field names, and a
// *SettingsValidationError (unwrapping to ErrInvalidSettings) otherwise.
func (v *SettingsValidator) Validate(ctx context.Context, doc any, fields ...string) error {
	instance, err := toInstance(doc)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		fields = []string{FieldRows, FieldRowRecords}
	}

	for _, field := range fields {
		if err = ctx.Err(); err != nil {
			return err
		}

		schema, ok := v.schemas[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		if err = schema.Validate(instance); err != nil {
			return &SettingsValidationError{
				Issues: collectIssues(err),
				Cause:  err,
			}
		}
	}

	return nil
}

func toInstance(doc any) (any, error) {
	switch value := doc.(type) {
	case []byte:
		return decodeInstance(value)
	case json.RawMessage:
		return decodeInstance(value)
	case map[string]any, []any, string, bool, float64, json.Number, nil:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, doc)
	}
}

func decodeInstance(raw []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return nil, &SettingsValidationError{
			Issues: []Issue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	return instance, nil
}

func compileSchema(name, source string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
}

// collectIssues flattens a jsonschema error tree into its leaf failures.
func collectIssues(err error) []Issue {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	return issues
}
