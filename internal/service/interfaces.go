// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/settings2markdown/models"
)

// TableService turns a settings document into a table of rows.
type TableService interface {
	// Rows returns the rows of settings in collated name order.
	Rows(ctx context.Context, settings *models.Settings) ([]models.Row, error)

	// Render writes the table to w in the requested format.
	Render(ctx context.Context, settings *models.Settings, format models.OutputFormat, w io.Writer) error

	// RenderMarkdown writes the table as a Markdown pipe table.
	RenderMarkdown(ctx context.Context, settings *models.Settings, w io.Writer) error

	// RenderHTML writes the Markdown table converted to HTML.
	RenderHTML(ctx context.Context, settings *models.Settings, w io.Writer) error
}
