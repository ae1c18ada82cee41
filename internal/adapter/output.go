// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
)

const stdoutName = "stdout"

// NewOutput returns the destination selected by cfg: a file truncated or
// created with mode 0644 when cfg.Path is set, otherwise stdout.
func NewOutput(cfg config.Output, stdout io.Writer, logger *logger.Logger) (Output, error) {
	if cfg.Path == "" {
		logger.Debug().Msg("writing to stdout")
		return &writerOutput{Writer: stdout}, nil
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateOutputFile, cfg.Path, err)
	}

	logger.Debug().Str("path", cfg.Path).Msg("writing to file")
	return &fileOutput{File: file}, nil
}

// writerOutput wraps a writer the program does not own, e.g. os.Stdout.
type writerOutput struct {
	io.Writer
}

func (o *writerOutput) Close() error { return nil }

func (o *writerOutput) Name() string { return stdoutName }

type fileOutput struct {
	*os.File
}

func (o *fileOutput) Close() error {
	if err := o.File.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", o.File.Name(), err)
	}
	return nil
}

func (o *fileOutput) Name() string { return o.File.Name() }
