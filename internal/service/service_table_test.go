// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
	"github.com/MKhiriev/settings2markdown/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableHeader = "|Name|URL|Enable URL|\n|:---:|:---:|:---:|\n"

func newTestTableService(t *testing.T, cfg config.Render) TableService {
	t.Helper()
	svc, err := NewTableService(cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc
}

func boolPtr(b bool) *bool { return &b }

func renderMarkdown(t *testing.T, svc TableService, settings *models.Settings) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, svc.RenderMarkdown(context.Background(), settings, &buf))
	return buf.String()
}

// ─────────────────────────────────────────────
// NewTableService
// ─────────────────────────────────────────────

func TestNewTableService_InvalidLocale(t *testing.T) {
	svc, err := NewTableService(config.Render{Locale: "??"}, logger.Nop())

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, ErrInvalidLocale))
}

// ─────────────────────────────────────────────
// RenderMarkdown
// ─────────────────────────────────────────────

func TestRenderMarkdown_Example(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"b": {URL: "http://b", EnableURL: ""},
		"A": {URL: "http://a", EnableURL: "http://a/en"},
	}}

	got := renderMarkdown(t, svc, settings)

	assert.Equal(t, tableHeader+
		"|A|http://a|http://a/en|\n"+
		"|b|http://b|-|\n", got)
}

func TestRenderMarkdown_EmptyRows(t *testing.T) {
	svc := newTestTableService(t, config.Render{})

	got := renderMarkdown(t, svc, &models.Settings{Rows: map[string]models.RowSettings{}})

	assert.Equal(t, tableHeader, got)
}

func TestRenderMarkdown_PipeEscaping(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"a|b": {URL: "https://x/?q=1|2", EnableURL: "https://y/|"},
	}}

	got := renderMarkdown(t, svc, settings)

	assert.Equal(t, tableHeader+`|a|b|https://x/?q=1\|2|https://y/\||`+"\n", got)
}

func TestRenderMarkdown_EnableURLPlaceholder(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"empty":    {URL: "u", EnableURL: ""},
		"dash":     {URL: "u", EnableURL: "-"},
		"verbatim": {URL: "u", EnableURL: "https://e"},
	}}

	got := renderMarkdown(t, svc, settings)

	assert.Equal(t, tableHeader+
		"|dash|u|-|\n"+
		"|empty|u|-|\n"+
		"|verbatim|u|https://e|\n", got)
}

func TestRenderMarkdown_RowCountAndOrderIndependentOfInput(t *testing.T) {
	svc := newTestTableService(t, config.Render{Locale: "en"})

	rows := map[string]models.RowSettings{}
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("Entry %02d", 49-i)
		if i%2 == 0 {
			name = strings.ToLower(name)
		}
		rows[name] = models.RowSettings{URL: "https://" + name}
	}

	first := renderMarkdown(t, svc, &models.Settings{Rows: rows})
	second := renderMarkdown(t, svc, &models.Settings{Rows: rows})
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	require.Len(t, lines, len(rows)+2)
	assert.True(t, strings.HasPrefix(lines[2], "|Entry 00|") || strings.HasPrefix(lines[2], "|entry 00|"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "|Entry 49|") || strings.HasPrefix(lines[len(lines)-1], "|entry 49|"))
}

func TestRenderMarkdown_OnlyEnabled(t *testing.T) {
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"on":      {URL: "u", Enabled: boolPtr(true)},
		"off":     {URL: "u", Enabled: boolPtr(false)},
		"default": {URL: "u"},
	}}

	all := renderMarkdown(t, newTestTableService(t, config.Render{}), settings)
	assert.Equal(t, tableHeader+"|default|u|-|\n|off|u|-|\n|on|u|-|\n", all)

	enabled := renderMarkdown(t, newTestTableService(t, config.Render{OnlyEnabled: true}), settings)
	assert.Equal(t, tableHeader+"|default|u|-|\n|on|u|-|\n", enabled)
}

func TestRenderMarkdown_NilSettings(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	var buf bytes.Buffer

	err := svc.RenderMarkdown(context.Background(), nil, &buf)

	assert.ErrorIs(t, err, ErrNoSettingsProvided)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderMarkdown_WriteError(t *testing.T) {
	svc := newTestTableService(t, config.Render{})

	err := svc.RenderMarkdown(context.Background(), &models.Settings{}, failingWriter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// ─────────────────────────────────────────────
// Rows
// ─────────────────────────────────────────────

func TestRows_CarriesEnabledState(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"Wayback Machine": {URL: "https://web.archive.org/web/*/%u", Enabled: boolPtr(false)},
		"archive.is":      {URL: "https://archive.is/%u"},
	}}

	rows, err := svc.Rows(context.Background(), settings)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.Row{Name: "archive.is", URL: "https://archive.is/%u", Enabled: true}, rows[0])
	assert.Equal(t, "Wayback Machine", rows[1].Name)
	assert.False(t, rows[1].Enabled)
}

// ─────────────────────────────────────────────
// Render / RenderHTML
// ─────────────────────────────────────────────

func TestRender_DispatchesOnFormat(t *testing.T) {
	svc := newTestTableService(t, config.Render{})
	settings := &models.Settings{Rows: map[string]models.RowSettings{
		"A": {URL: "http://a", EnableURL: "x|y"},
		"b": {URL: "http://b"},
	}}

	var md bytes.Buffer
	require.NoError(t, svc.Render(context.Background(), settings, models.FormatMarkdown, &md))
	assert.True(t, strings.HasPrefix(md.String(), tableHeader))

	var html bytes.Buffer
	require.NoError(t, svc.Render(context.Background(), settings, models.FormatHTML, &html))
	out := html.String()
	assert.Contains(t, out, "<table>")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
	assert.Contains(t, out, "http://a")
	assert.Contains(t, out, "x|y")

	err := svc.Render(context.Background(), settings, models.OutputFormat("pdf"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
