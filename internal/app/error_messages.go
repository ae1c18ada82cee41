// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the loader, the table service and the output adapters
// into a single conversion run.
//
// All Msg* constants are the log messages emitted for each step of a run.
// Keeping them in one place keeps the stderr diagnostics consistent.
package app

const (
	// MsgLoadingSettings is logged before the settings file is opened.
	MsgLoadingSettings = "loading settings"

	// MsgRenderingTable is logged once settings are loaded.
	MsgRenderingTable = "rendering table"

	// MsgWritingOutput is logged before the rendered table is written.
	MsgWritingOutput = "writing output"

	// MsgCopyingToClipboard is logged before the clipboard is replaced.
	MsgCopyingToClipboard = "copying table to clipboard"

	// MsgRunFinished is logged after a successful run.
	MsgRunFinished = "conversion finished"
)
