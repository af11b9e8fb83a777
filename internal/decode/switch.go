// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"fmt"

	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
)

// Directional glyphs of a genuine switch and comparison glyphs of a
// proportional control used as an interval switch.
const (
	glyphUp      = "  ↑"
	glyphCenter  = "  —"
	glyphDown    = "  ↓"
	glyphAtLeast = "≥"
	glyphAtMost  = "≤"
)

// Switch is a decoded reference.
type Switch struct {
	Short         types.Label // Control name only
	WithValue     types.Label // Name with percentage or direction
	WithDirection types.Label // Name with direction for genuine switches only
	Proportional  bool
}

func uniform(l types.Label) Switch {
	return Switch{Short: l, WithValue: l, WithDirection: l}
}

// Tables are the symbol tables a Decoder resolves override codes against.
// Nil tables behave as empty.
type Tables struct {
	Functions   *symbols.Functions
	Servos      *symbols.Servos
	FlightModes *symbols.FlightModes
	Timers      *symbols.Timers
	Orientation types.Orientation
}

// Decoder resolves references of one document.
type Decoder struct {
	t    Tables
	diag *format.Diagnostics
}

// NewDecoder returns a decoder over t that records misses in d.
func NewDecoder(t Tables, d *format.Diagnostics) *Decoder {
	if t.Functions == nil {
		t.Functions = &symbols.Functions{}
	}
	if t.Servos == nil {
		t.Servos = &symbols.Servos{}
	}
	if t.FlightModes == nil {
		t.FlightModes = &symbols.FlightModes{}
	}
	if t.Timers == nil {
		t.Timers = &symbols.Timers{}
	}
	return &Decoder{t: t, diag: d}
}

// Orientation returns the switch orientation settings in use.
func (dc *Decoder) Orientation() types.Orientation {
	return dc.t.Orientation
}

// Switch decodes a stored reference. An empty string is Absent; any other
// string that is not a reference is Unresolved and counted.
func (dc *Decoder) Switch(s string) Switch {
	if s == "" {
		return uniform(types.AbsentLabel)
	}
	ref, err := ParseReference(s)
	if err != nil {
		dc.diag.Miss()
		return uniform(types.UnresolvedLabel)
	}
	return dc.Decode(ref)
}

// TrySwitch decodes s if it has the shape of a reference. Strings of any
// other shape are reported as not a reference and not counted.
func (dc *Decoder) TrySwitch(s string) (Switch, bool) {
	ref, err := ParseReference(s)
	if err != nil {
		return Switch{}, false
	}
	return dc.Decode(ref), true
}

// Decode resolves a parsed reference.
func (dc *Decoder) Decode(ref Reference) Switch {
	sw := dc.resolve(ref)
	sw.Proportional = ref.Proportional() == 1
	return sw
}

func (dc *Decoder) resolve(ref Reference) Switch {
	switch ref.Secondary() {
	case OverrideTimer:
		return uniform(dc.timer(ref.Primary()))
	case OverrideFunction:
		return uniform(dc.function(ref.Primary()))
	case OverrideServo:
		return uniform(dc.servo(ref.Primary()))
	case OverrideFlightMode:
		return uniform(dc.flightMode(ref.Primary()))
	}

	if ref.Primary() == 0 {
		return uniform(dc.seventh(ref.Secondary()))
	}
	return dc.control(ref)
}

func (dc *Decoder) timer(id int64) types.Label {
	if !dc.t.Timers.InRange(id) {
		dc.diag.Miss()
		return types.UnresolvedLabel
	}
	label, n, ok := dc.t.Timers.Lookup(id)
	if !ok {
		return types.MissingLabel
	}
	return types.Resolve(fmt.Sprintf("T%02d  (%s)", n, label))
}

func (dc *Decoder) function(id int64) types.Label {
	if id < 0 || id >= symbols.FunctionSlots {
		dc.diag.Miss()
		return types.UnresolvedLabel
	}
	label, ok := dc.t.Functions.Lookup(id)
	if id <= symbols.LastBuiltinFunction {
		if !ok {
			return types.MissingLabel
		}
		return types.Resolve(label)
	}
	if !ok {
		return types.Resolve(fmt.Sprintf("U%d", id-symbols.LastBuiltinFunction))
	}
	if label == symbols.ButterflyLabel {
		return types.Resolve(label)
	}
	return types.Resolve(fmt.Sprintf("U%d  (%s)", id-symbols.LastBuiltinFunction, label))
}

func (dc *Decoder) servo(id int64) types.Label {
	slot := id + 1
	if slot < 1 || slot >= symbols.ServoSlots {
		dc.diag.Miss()
		return types.UnresolvedLabel
	}
	out := fmt.Sprintf("O%d", slot)
	name := dc.t.Servos.Slot(slot)
	switch name.Kind {
	case types.Resolved:
		out += "  (" + name.Text + ")"
	case types.Unresolved:
		// Counted when the servo table was built.
		out += "  (" + format.UnknownMarker + ")"
	}
	return types.Resolve(out)
}

func (dc *Decoder) flightMode(id int64) types.Label {
	label, n, ok := dc.t.FlightModes.Lookup(id)
	if !ok {
		return types.MissingLabel
	}
	return types.Resolve(fmt.Sprintf("FM%d  (%s)", n, label))
}

func (dc *Decoder) seventh(i int64) types.Label {
	if i < 0 {
		return types.AbsentLabel
	}
	if i >= int64(len(seventhPosition)) || seventhPosition[i] == format.UnknownMarker {
		dc.diag.Miss()
		return types.UnresolvedLabel
	}
	return types.Resolve(seventhPosition[i])
}

func (dc *Decoder) control(ref Reference) Switch {
	name, ok := ControlName(ref.Primary())
	if !ok {
		dc.diag.Miss()
		return uniform(types.UnresolvedLabel)
	}
	inverted := ref.Inverted() == 1

	if IsProportionalControl(name) {
		var value string
		if ref.Interval() == -1 {
			op := glyphAtLeast
			if inverted {
				op = glyphAtMost
			}
			value = fmt.Sprintf("  %s %d%%", op, format.Percent(ref.Value()))
		} else {
			v := ref.Value()
			if inverted {
				v = -v
			}
			value = fmt.Sprintf("  %d%%", format.Percent(v))
		}
		return Switch{
			Short:         types.Resolve(name),
			WithValue:     types.Resolve(name + value),
			WithDirection: types.Resolve(name),
		}
	}

	if !IsGenuineSwitch(name) {
		dc.diag.Miss()
		return uniform(types.UnresolvedLabel)
	}
	v := ref.Value()
	if !dc.t.Orientation.Normal(name) {
		v = -v
	}
	if inverted {
		v = -v
	}
	glyph := glyphCenter
	switch {
	case v < 0:
		glyph = glyphDown
	case v > 0:
		glyph = glyphUp
	}
	return Switch{
		Short:         types.Resolve(name),
		WithValue:     types.Resolve(name + glyph),
		WithDirection: types.Resolve(name + glyph),
	}
}

// Assigned reports whether s is a well-formed reference that points at
// something. It never records a miss.
func Assigned(s string) bool {
	ref, err := ParseReference(s)
	if err != nil {
		return false
	}
	return ref.Primary() != 0 || ref.Secondary() >= 0
}
