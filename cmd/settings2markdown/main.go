// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/settings2markdown/internal/adapter"
	"github.com/MKhiriev/settings2markdown/internal/app"
	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
	"github.com/MKhiriev/settings2markdown/internal/service"
	"github.com/MKhiriev/settings2markdown/internal/store"
	"github.com/MKhiriev/settings2markdown/internal/validators"
	"github.com/MKhiriev/settings2markdown/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("settings2markdown")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if config.IsArgumentCountError(err) {
			config.PrintUsage(os.Stderr)
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.ShowVersion {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validator, err := validators.NewSettingsValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("create settings validator")
	}

	storage := store.NewSettingsFileStorage(validator, log)

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	openOutput := func() (adapter.Output, error) {
		return adapter.NewOutput(cfg.Output, os.Stdout, log)
	}

	var clipboard adapter.Clipboard
	if cfg.Output.Clipboard {
		clipboard = adapter.NewSystemClipboard()
	}

	converter, err := app.NewApp(cfg, storage, services, openOutput, clipboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = converter.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}
