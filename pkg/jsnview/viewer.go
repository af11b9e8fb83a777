// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package jsnview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/jsnview/internal/batch"
	"github.com/petar-djukic/jsnview/internal/compare"
	"github.com/petar-djukic/jsnview/internal/decode"
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/report"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const (
	defaultVersion   = "dev"
	defaultPlacement = batch.PlaceSame
)

// Viewer renders model files with one configuration.
type Viewer struct {
	cfg  Config
	opts report.Options
}

// New validates the config and returns a Viewer.
func New(cfg Config) (*Viewer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	orientation := types.Orientation{}
	for name, v := range cfg.Switches {
		orientation[name] = v == 1
	}
	return &Viewer{
		cfg:  cfg,
		opts: report.Options{Version: cfg.Version, Orientation: orientation},
	}, nil
}

// Render writes the report of one model file to w.
func (v *Viewer) Render(w io.Writer, data []byte) (*Summary, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	d := &format.Diagnostics{}
	if err := report.Render(w, doc, v.opts, d); err != nil {
		return nil, err
	}
	return &Summary{Unknown: d.Count()}, nil
}

// RenderFiles renders every path to a report file placed according to
// Config.Placement. Per-file outcomes are written to status.
func (v *Viewer) RenderFiles(ctx context.Context, paths []string, status io.Writer) (*BatchResult, error) {
	runner := batch.NewRunner(batch.Deps{
		Placement: v.cfg.Placement,
		Options:   v.opts,
		Status:    status,
	})
	r, err := runner.Run(ctx, paths)
	if r == nil {
		return &BatchResult{}, err
	}
	return &BatchResult{
		Written: r.Written,
		Skipped: r.Skipped,
		Unknown: r.Unknown,
		Errors:  r.Errors,
	}, err
}

// Diff renders two model files and writes the report lines that differ.
func (v *Viewer) Diff(w io.Writer, oldData, newData []byte, opts DiffOptions) (*DiffResult, error) {
	var a, b bytes.Buffer
	if _, err := v.Render(&a, oldData); err != nil {
		return nil, fmt.Errorf("old model: %w", err)
	}
	if _, err := v.Render(&b, newData); err != nil {
		return nil, fmt.Errorf("new model: %w", err)
	}

	res := compare.Reports(a.String(), b.String(), compare.Options{IgnoreSpace: opts.IgnoreSpace, Context: opts.Context})
	if err := res.Write(w); err != nil {
		return nil, fmt.Errorf("writing diff: %w", err)
	}
	ins, del := res.Counts()
	return &DiffResult{
		Changed:    res.Changed(),
		Inserted:   ins,
		Deleted:    del,
		Similarity: res.Similarity,
	}, nil
}

// validateConfig checks the switch orientation settings.
func validateConfig(cfg Config) error {
	for name, v := range cfg.Switches {
		if !decode.IsGenuineSwitch(name) {
			return fmt.Errorf("switch %q is not one of %s", name, strings.Join(decode.GenuineSwitches(), " "))
		}
		if v != 0 && v != 1 {
			return fmt.Errorf("orientation of switch %s must be 0 or 1, got %d", name, v)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	if cfg.Placement == "" {
		cfg.Placement = defaultPlacement
	}
}

// Sections returns the names of the report sections in output order.
func Sections() []string {
	return report.SectionNames()
}
