// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/settings2markdown/internal/adapter"
	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
	"github.com/MKhiriev/settings2markdown/internal/service"
	"github.com/MKhiriev/settings2markdown/internal/store"
)

// OutputFactory opens the destination for the rendered table. It is only
// called after rendering succeeded, so a failed run never truncates an
// existing output file.
type OutputFactory func() (adapter.Output, error)

// App performs one settings-to-table conversion.
type App struct {
	cfg        *config.StructuredConfig
	storage    store.SettingsStorage
	services   *service.Services
	openOutput OutputFactory
	clipboard  adapter.Clipboard

	logger *logger.Logger
}

// NewApp constructs an App. clipboard may be nil unless cfg.Output.Clipboard
// is set.
func NewApp(
	cfg *config.StructuredConfig,
	storage store.SettingsStorage,
	services *service.Services,
	openOutput OutputFactory,
	clipboard adapter.Clipboard,
	logger *logger.Logger,
) (*App, error) {
	if cfg == nil || storage == nil || services == nil || services.TableService == nil || openOutput == nil {
		return nil, ErrNilDependency
	}
	if cfg.Output.Clipboard && clipboard == nil {
		return nil, ErrNoClipboard
	}

	return &App{
		cfg:        cfg,
		storage:    storage,
		services:   services,
		openOutput: openOutput,
		clipboard:  clipboard,
		logger:     logger,
	}, nil
}

// Run loads the settings file, renders it and delivers the result. Nothing
// is written anywhere unless loading and rendering both succeed.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = a.logger.WithContext(ctx)
	log := logger.FromContext(ctx)

	log.Debug().Str("path", a.cfg.SettingsPath).Msg(MsgLoadingSettings)
	settings, err := a.storage.LoadSettings(ctx, a.cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	format := a.cfg.OutputFormat()
	log.Debug().Str("format", string(format)).Int("rows", len(settings.Rows)).Msg(MsgRenderingTable)

	var rendered bytes.Buffer
	if err = a.services.TableService.Render(ctx, settings, format, &rendered); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	out, err := a.openOutput()
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	log.Debug().Str("output", out.Name()).Int("bytes", rendered.Len()).Msg(MsgWritingOutput)
	n, err := out.Write(rendered.Bytes())
	if err != nil {
		return fmt.Errorf("write output %s: %w", out.Name(), err)
	}
	if n != rendered.Len() {
		return fmt.Errorf("write output %s: %w", out.Name(), ErrShortOutputWrite)
	}

	if a.cfg.Output.Clipboard {
		log.Debug().Msg(MsgCopyingToClipboard)
		if err = a.clipboard.WriteAll(rendered.String()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	log.Info().Msg(MsgRunFinished)
	return nil
}
