// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation of a settings document.
const (
	// FieldRows targets the presence and type of the top-level "rows" key.
	FieldRows = "rows"

	// FieldRowRecords targets the shape of every record under "rows".
	FieldRowRecords = "row_records"
)

const rowsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["rows"],
	"properties": {
		"rows": {"type": "object"}
	}
}`

const rowRecordsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"rows": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["url", "enableURL"],
				"properties": {
					"url": {"type": "string"},
					"enableURL": {"type": "string"},
					"enabled": {"type": "boolean"}
				}
			}
		}
	}
}`
