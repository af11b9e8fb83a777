// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jsnview renders Jeti transmitter model files (.jsn) as
// ';'-delimited text reports and exposes the symbol tables a report is
// built from.
package jsnview

import (
	"errors"

	"github.com/petar-djukic/jsnview/internal/document"
)

// Error types for the jsnview API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	// ErrNotAModel is returned for JSON input that is not a model file.
	ErrNotAModel = document.ErrNotAModel
)

// Config configures a Viewer.
type Config struct {
	Version   string           // Written in the report header (default "dev")
	Placement string           // "same", "subfolder" or an output directory (default "same")
	Switches  map[string]int64 // Default orientation per switch SA..SP: 1 normal, 0 reversed
}

// Summary describes one rendered report.
type Summary struct {
	Unknown int // Number of references and codes that could not be resolved
}

// BatchResult holds the outcome of rendering a list of files.
type BatchResult struct {
	Written []string // Report paths written
	Skipped []string // Inputs that are not model files
	Unknown []string // Inputs whose report contains unresolved data
	Errors  []string // Inputs that failed to read or write
}

// DiffOptions controls Viewer.Diff.
type DiffOptions struct {
	IgnoreSpace bool // Collapse runs of spaces before comparing
	Context     int  // Unchanged report lines shown around each change
}

// DiffResult holds the changed lines between two reports.
type DiffResult struct {
	Changed    bool
	Inserted   int
	Deleted    int
	Similarity float64
}
