// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
	"github.com/MKhiriev/settings2markdown/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown table layout.
const (
	tableTitleRow     = "|Name|URL|Enable URL|"
	tableAlignmentRow = "|:---:|:---:|:---:|"

	// noEnableURL fills the "Enable URL" cell of rows without one.
	noEnableURL = "-"
)

var pipeEscaper = strings.NewReplacer("|", `\|`)

type tableService struct {
	collator    *Collator
	onlyEnabled bool
	markdown    goldmark.Markdown

	logger *logger.Logger
}

// NewTableService builds a [TableService] from the render configuration.
// It fails with ErrInvalidLocale when cfg.Locale cannot be parsed.
func NewTableService(cfg config.Render, logger *logger.Logger) (TableService, error) {
	collator, err := NewCollator(cfg.Locale)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("locale", collator.Locale()).
		Bool("only_enabled", cfg.OnlyEnabled).
		Msg("table service created")

	return &tableService{
		collator:    collator,
		onlyEnabled: cfg.OnlyEnabled,
		markdown:    goldmark.New(goldmark.WithExtensions(extension.Table)),
		logger:      logger,
	}, nil
}

func (s *tableService) Rows(ctx context.Context, settings *models.Settings) ([]models.Row, error) {
	if settings == nil {
		return nil, ErrNoSettingsProvided
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(settings.Rows))
	for name, record := range settings.Rows {
		if s.onlyEnabled && !record.IsEnabled() {
			s.logger.Debug().Str("name", name).Msg("skipping disabled row")
			continue
		}
		rows = append(rows, models.Row{
			Name:      name,
			URL:       record.URL,
			EnableURL: record.EnableURL,
			Enabled:   record.IsEnabled(),
		})
	}

	slices.SortFunc(rows, func(a, b models.Row) int {
		return s.collator.Compare(a.Name, b.Name)
	})

	return rows, nil
}

func (s *tableService) Render(ctx context.Context, settings *models.Settings, format models.OutputFormat, w io.Writer) error {
	switch format {
	case models.FormatMarkdown:
		return s.RenderMarkdown(ctx, settings, w)
	case models.FormatHTML:
		return s.RenderHTML(ctx, settings, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// RenderMarkdown writes the title and alignment rows followed by one line
// per row. Pipes are escaped in the URL columns only; names are written
// verbatim.
func (s *tableService) RenderMarkdown(ctx context.Context, settings *models.Settings, w io.Writer) error {
	rows, err := s.Rows(ctx, settings)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(tableTitleRow + "\n")
	b.WriteString(tableAlignmentRow + "\n")
	for _, row := range rows {
		b.WriteString(formatRow(row))
		b.WriteByte('\n')
	}

	if _, err = io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown table: %w", err)
	}

	s.logger.Debug().Int("rows", len(rows)).Msg("markdown table rendered")
	return nil
}

func (s *tableService) RenderHTML(ctx context.Context, settings *models.Settings, w io.Writer) error {
	var md bytes.Buffer
	if err := s.RenderMarkdown(ctx, settings, &md); err != nil {
		return err
	}

	if err := s.markdown.Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("convert markdown table to html: %w", err)
	}
	return nil
}

func formatRow(row models.Row) string {
	enableURL := row.EnableURL
	if enableURL == "" {
		enableURL = noEnableURL
	}

	return fmt.Sprintf("|%s|%s|%s|", row.Name, pipeEscaper.Replace(row.URL), pipeEscaper.Replace(enableURL))
}
