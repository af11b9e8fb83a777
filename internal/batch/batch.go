// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batch renders a list of model files one after another and
// places each report according to the output policy.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/report"
)

// Output placements. Any other value names an output directory.
const (
	PlaceSame      = "same"
	PlaceSubfolder = "subfolder"
)

const (
	reportExt    = ".csv"
	subfolderDir = "csv"
)

// RunResult holds the outcome of a Runner.Run invocation.
type RunResult struct {
	Written []string // Report paths written
	Skipped []string // Inputs that are not model files
	Unknown []string // Inputs whose report contains unresolved data
	Errors  []string // Inputs that failed to read or write
}

// Deps holds the runner's settings.
type Deps struct {
	Placement string         // PlaceSame, PlaceSubfolder or a directory (default PlaceSame)
	Options   report.Options // Passed to every render
	Status    io.Writer      // Per-document outcome lines; nil discards them
}

// Runner renders model files sequentially.
type Runner struct {
	deps   Deps
	diag   format.Diagnostics
	create func(name string) (io.WriteCloser, error)
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Placement == "" {
		deps.Placement = PlaceSame
	}
	if deps.Status == nil {
		deps.Status = io.Discard
	}
	return &Runner{deps: deps, create: createFile}
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Run renders every path. Documents that are not model files are reported
// and skipped; the run stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (*RunResult, error) {
	result := &RunResult{}
	for _, in := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := OutputPath(in, r.deps.Placement)
		if err != nil {
			r.status("error %s: %v", in, err)
			result.Errors = append(result.Errors, in)
			continue
		}

		r.diag.Reset()
		err = r.renderFile(in, out, &r.diag)
		var pe *document.ParseError
		switch {
		case errors.Is(err, document.ErrNotAModel) || errors.As(err, &pe):
			r.status("skipped %s: %v", in, err)
			result.Skipped = append(result.Skipped, in)
			continue
		case err != nil:
			r.status("error %s: %v", in, err)
			result.Errors = append(result.Errors, in)
			continue
		}

		result.Written = append(result.Written, out)
		r.status("wrote %s", out)
		if r.diag.Count() > 0 {
			r.status("unknown data in model %s", in)
			result.Unknown = append(result.Unknown, in)
		}
	}
	return result, nil
}

func (r *Runner) renderFile(in, out string, d *format.Diagnostics) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := r.create(out)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Render(f, doc, r.deps.Options, d); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(out)
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

func (r *Runner) status(msg string, args ...any) {
	fmt.Fprintf(r.deps.Status, msg+"\n", args...)
}

// OutputPath returns where the report of model file in is written.
func OutputPath(in, placement string) (string, error) {
	if in == "" {
		return "", fmt.Errorf("empty input path")
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + reportExt
	switch placement {
	case "", PlaceSame:
		return filepath.Join(filepath.Dir(in), base), nil
	case PlaceSubfolder:
		return filepath.Join(filepath.Dir(in), subfolderDir, base), nil
	default:
		return filepath.Join(placement, base), nil
	}
}
