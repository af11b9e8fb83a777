// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders a model document as a ';'-delimited text report.
// Every section reads the symbol tables built for the document and decodes
// references through one Decoder; the order of sections is fixed.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/internal/decode"
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const defaultVersion = "dev"

// Options configures rendering.
type Options struct {
	Version     string            // Written in the header line (default "dev")
	Orientation types.Orientation // Default orientation of the genuine switches
}

// section is one report generator.
type section struct {
	name   string
	render func(*generator)
}

// sections lists the generators in output order.
var sections = []section{
	{"global", (*generator).global},
	{"type-specific", (*generator).typeSpecific},
	{"common", (*generator).common},
	{"controls", (*generator).controls},
	{"ctrl-sound", (*generator).ctrlSound},
	{"functions", (*generator).functions},
	{"servos", (*generator).servos},
	{"flight-modes", (*generator).flightModes},
	{"function-specs", (*generator).functionSpecs},
	{"flight-mode-mixes", (*generator).flightModeMixes},
	{"snap-rolls", (*generator).snapRolls},
	{"free-mixes", (*generator).freeMixes},
	{"sequencer", (*generator).sequencer},
	{"timers", (*generator).timers},
	{"logical-switches", (*generator).logicalSwitches},
	{"event-sounds", (*generator).eventSounds},
	{"voice", (*generator).voice},
	{"sensors", (*generator).sensors},
	{"voice-announcements", (*generator).voiceAnnouncements},
	{"telemetry-controls", (*generator).telemetryControls},
	{"displayed-telemetry", (*generator).displayedTelemetry},
	{"vario", (*generator).vario},
	{"alarms", (*generator).alarms},
	{"accelerometer", (*generator).accelerometer},
	{"lua", (*generator).lua},
	{"assigned-controls", (*generator).assignedControls},
}

// SectionNames returns the section names in output order.
func SectionNames() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

type generator struct {
	out  strings.Builder
	root document.Node
	raw  string
	t    *symbols.Tables
	dec  *decode.Decoder
	diag *format.Diagnostics
}

// Render builds the symbol tables of doc and writes the full report to w.
// Decode misses are recorded in d; only write errors are returned.
func Render(w io.Writer, doc *document.Document, opts Options, d *format.Diagnostics) error {
	version := opts.Version
	if version == "" {
		version = defaultVersion
	}

	tables := symbols.Build(doc, d)
	g := &generator{
		root: doc.Root,
		raw:  doc.Raw,
		t:    tables,
		dec:  decode.NewDecoder(decoderTables(tables, opts.Orientation), d),
		diag: d,
	}

	g.out.WriteString("jsnview;version " + version)
	for _, s := range sections {
		s.render(g)
	}
	g.out.WriteString("\n")

	if _, err := io.WriteString(w, g.out.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func decoderTables(t *symbols.Tables, o types.Orientation) decode.Tables {
	return decode.Tables{
		Functions:   t.Functions,
		Servos:      t.Servos,
		FlightModes: t.FlightModes,
		Timers:      t.Timers,
		Orientation: o,
	}
}

// title starts a section or subsection.
func (g *generator) title(text string) {
	g.out.WriteString("\n\n" + text)
}

// row writes one data row.
func (g *generator) row(cells ...string) {
	g.out.WriteString("\n" + strings.Join(cells, ";"))
}

// essence writes per-flight-mode values. Identical values across all
// flight modes collapse into a single "Global" row. Values start with the
// delimiter.
func (g *generator) essence(labels, values []string) {
	if len(values) == 0 {
		return
	}
	global := true
	for _, v := range values {
		if v != values[0] {
			global = false
			break
		}
	}
	if global {
		g.out.WriteString("\nGlobal" + values[0])
		return
	}
	for i, v := range values {
		g.out.WriteString("\n" + labels[i] + v)
	}
}

func (g *generator) sw(n document.Node) decode.Switch {
	return g.dec.Switch(n.Str())
}

// cell renders a label for a report cell.
func cell(l types.Label) string {
	switch l.Kind {
	case types.Resolved:
		return l.Text
	case types.Missing:
		return "??"
	case types.Unresolved:
		return format.UnknownMarker
	default:
		return "-"
	}
}

func (g *generator) functionLabel(id int64) string {
	return cell(g.t.Functions.Label(id))
}

// flightModeLabel returns the label of the flight mode at storage position
// pos, as used by Function-Specs, Mixes-Values and SnapRolls.
func (g *generator) flightModeLabel(pos int64) string {
	if m, ok := g.t.FlightModes.At(pos); ok {
		return m.Label
	}
	return cell(types.MissingLabel)
}

// surfaceServos returns the servo count of the surface a function drives,
// or 0 when the function is not a surface function.
func (g *generator) surfaceServos(functionLabel string) int {
	s, ok := types.SurfaceOf(functionLabel)
	if !ok {
		return 0
	}
	return g.t.Surfaces.Count(s)
}

// slashed joins the given elements of a sequence with " / ".
func slashed(n document.Node, idx ...int) string {
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = n.Index(j).Str()
	}
	return strings.Join(parts, " / ")
}

// firstN returns the indices 0..n-1.
func firstN(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}

func pct(v int64) string {
	return strconv.Itoa(format.Percent(v)) + "%"
}

// dump writes a record as key;value; rows.
func (g *generator) dump(n document.Node) {
	for _, k := range n.Keys() {
		g.out.WriteString("\n" + k + ";" + n.Get(k).Str() + ";")
	}
}
