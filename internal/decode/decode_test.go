// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `{
  "Global": {"Name": "Test"},
  "Type-Specific": {"Model-Type": "Aero", "Wing-Type": 3, "Tail-Type": 0},
  "Common": {},
  "Functions": {"Data": [
    {"ID": 0, "Label": "Throttle"},
    {"ID": 1, "Label": "Ailerons"},
    {"ID": 14, "Label": "Smoke"}]},
  "Servos": {"Data": [
    {"Index": 0, "Servo-Code": 257},
    {"Index": 1, "Servo-Code": 270}]},
  "Flight-Modes": {"Data": [
    {"ID": 5, "Label": "Normal"},
    {"ID": 2, "Label": "Thermal"},
    {"ID": 9, "Label": "Speed"}]},
  "Timers": {"Data": [
    {"ID": 0, "Label": "Motor"},
    {"ID": 3, "Label": "Flight"}]}
}`

// newTestDecoder builds the decoder over testModel. Switch SB is mounted
// reversed.
func newTestDecoder(t *testing.T, d *format.Diagnostics) *Decoder {
	t.Helper()
	doc, err := document.Parse([]byte(testModel))
	require.NoError(t, err)
	st := symbols.Build(doc, nil)
	return NewDecoder(Tables{
		Functions:   st.Functions,
		Servos:      st.Servos,
		FlightModes: st.FlightModes,
		Timers:      st.Timers,
		Orientation: types.Orientation{"SB": false},
	}, d)
}

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("12,0,1,1,1,-4000,-1,+4")
	require.NoError(t, err)
	assert.Equal(t, int64(12), ref.Primary())
	assert.Equal(t, int64(0), ref.Inverted())
	assert.Equal(t, int64(1), ref.Proportional())
	assert.Equal(t, int64(1), ref.Reserved())
	assert.Equal(t, int64(1), ref.Centered())
	assert.Equal(t, int64(-4000), ref.Value())
	assert.Equal(t, int64(-1), ref.Secondary())
	assert.Equal(t, int64(4), ref.Interval())
	assert.Equal(t, "12,0,1,1,1,-4000,-1,4", ref.String())

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5,6,7,8,9", "1,2,3,4,5,6,7,", "1,2,3,4,5,6,7,x", "1,2,3,4,5,6,7,-", "1, 2,3,4,5,6,7,8", "1.5,2,3,4,5,6,7,8"} {
		_, err := ParseReference(bad)
		var se *ShapeError
		require.True(t, errors.As(err, &se), "input %q", bad)
		assert.Equal(t, bad, se.Input)
	}
}

func TestDecoderSwitch(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		short         types.Label
		withValue     types.Label
		withDirection types.Label
		proportional  bool
		misses        int
	}{
		{name: "empty is absent", in: "", short: types.AbsentLabel, withValue: types.AbsentLabel, withDirection: types.AbsentLabel},
		{name: "too few fields", in: "1,2,3", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},
		{name: "non numeric field", in: "9,0,0,0,0,0,-1,a", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "switch up", in: "9,0,0,0,0,4000,-1,0", short: res("SA"), withValue: res("SA  ↑"), withDirection: res("SA  ↑")},
		{name: "switch down", in: "9,0,0,0,0,-4000,-1,0", short: res("SA"), withValue: res("SA  ↓"), withDirection: res("SA  ↓")},
		{name: "switch center", in: "9,0,0,0,0,0,-1,0", short: res("SA"), withValue: res("SA  —"), withDirection: res("SA  —")},
		{name: "inverted switch", in: "9,1,0,0,0,-4000,-1,0", short: res("SA"), withValue: res("SA  ↑"), withDirection: res("SA  ↑")},
		{name: "reversed switch", in: "10,0,0,0,0,4000,-1,0", short: res("SB"), withValue: res("SB  ↓"), withDirection: res("SB  ↓")},
		{name: "reversed and inverted", in: "10,1,0,0,0,4000,-1,0", short: res("SB"), withValue: res("SB  ↑"), withDirection: res("SB  ↑")},
		{name: "signed fields", in: "+9,+0,+0,0,0,+4000,-1,0", short: res("SA"), withValue: res("SA  ↑"), withDirection: res("SA  ↑")},

		{name: "proportional control", in: "1,0,1,0,0,1000,-1,0", short: res("P1"), withValue: res("P1  25%"), withDirection: res("P1"), proportional: true},
		{name: "inverted control", in: "1,1,1,0,0,1000,-1,0", short: res("P1"), withValue: res("P1  -25%"), withDirection: res("P1"), proportional: true},
		{name: "interval at least", in: "1,0,0,0,0,1000,-1,-1", short: res("P1"), withValue: res("P1  ≥ 25%"), withDirection: res("P1")},
		{name: "interval at most keeps value", in: "1,1,0,0,0,1000,-1,-1", short: res("P1"), withValue: res("P1  ≤ 25%"), withDirection: res("P1")},
		{name: "half rounds to even", in: "1,0,0,0,0,20,-1,0", short: res("P1"), withValue: res("P1  0%"), withDirection: res("P1")},
		{name: "one and a half rounds up", in: "1,0,0,0,0,60,-1,0", short: res("P1"), withValue: res("P1  2%"), withDirection: res("P1")},
		{name: "P3 and P4 swapped", in: "3,0,0,0,0,0,-1,0", short: res("P4"), withValue: res("P4  0%"), withDirection: res("P4")},
		{name: "P10", in: "22,0,0,0,0,-4000,-1,0", short: res("P10"), withValue: res("P10  -100%"), withDirection: res("P10")},
		{name: "primary out of range", in: "27,0,0,0,0,0,-1,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "logical switch", in: "0,0,0,0,0,0,0,0", short: res("Log1"), withValue: res("Log1"), withDirection: res("Log1")},
		{name: "sequencer", in: "0,0,0,0,0,0,80,0", short: res("Q1"), withValue: res("Q1"), withDirection: res("Q1")},
		{name: "digital trim", in: "0,0,0,0,0,0,106,0", short: res("Tr1"), withValue: res("Tr1"), withDirection: res("Tr1")},
		{name: "log max", in: "0,0,0,0,0,0,127,0", short: res("Log.MAX"), withValue: res("Log.MAX"), withDirection: res("Log.MAX")},
		{name: "no control", in: "0,0,0,0,0,0,-1,0", short: types.AbsentLabel, withValue: types.AbsentLabel, withDirection: types.AbsentLabel},
		{name: "reserved slot", in: "0,0,0,0,0,0,24,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},
		{name: "past seventh table", in: "0,0,0,0,0,0,130,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "timer by display order", in: "3,0,0,0,0,0,76,0", short: res("T02  (Flight)"), withValue: res("T02  (Flight)"), withDirection: res("T02  (Flight)")},
		{name: "first timer", in: "0,0,1,0,0,0,76,0", short: res("T01  (Motor)"), withValue: res("T01  (Motor)"), withDirection: res("T01  (Motor)"), proportional: true},
		{name: "deleted timer", in: "1,0,0,0,0,0,76,0", short: types.MissingLabel, withValue: types.MissingLabel, withDirection: types.MissingLabel},
		{name: "timer out of range", in: "20,0,0,0,0,0,76,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "builtin function", in: "0,0,0,0,0,0,77,0", short: res("Throttle"), withValue: res("Throttle"), withDirection: res("Throttle")},
		{name: "deleted builtin function", in: "2,0,0,0,0,0,77,0", short: types.MissingLabel, withValue: types.MissingLabel, withDirection: types.MissingLabel},
		{name: "restored airbrake", in: "5,0,0,0,0,0,77,0", short: res("Brk"), withValue: res("Brk"), withDirection: res("Brk")},
		{name: "user function", in: "14,0,0,0,0,0,77,0", short: res("U1  (Smoke)"), withValue: res("U1  (Smoke)"), withDirection: res("U1  (Smoke)")},
		{name: "undefined user function", in: "16,0,0,0,0,0,77,0", short: res("U3"), withValue: res("U3"), withDirection: res("U3")},
		{name: "butterfly", in: "31,0,0,0,0,0,77,0", short: res("Butterfly"), withValue: res("Butterfly"), withDirection: res("Butterfly")},
		{name: "function out of range", in: "51,0,0,0,0,0,77,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "servo", in: "0,0,0,0,0,0,78,0", short: res("O1  (Aileron1)"), withValue: res("O1  (Aileron1)"), withDirection: res("O1  (Aileron1)")},
		{name: "unknown servo", in: "1,0,0,0,0,0,78,0", short: res("O2  (?zefix?)"), withValue: res("O2  (?zefix?)"), withDirection: res("O2  (?zefix?)")},
		{name: "unassigned servo", in: "5,0,0,0,0,0,78,0", short: res("O6"), withValue: res("O6"), withDirection: res("O6")},
		{name: "servo out of range", in: "24,0,0,0,0,0,78,0", short: types.UnresolvedLabel, withValue: types.UnresolvedLabel, withDirection: types.UnresolvedLabel, misses: 1},

		{name: "default flight mode sorts last", in: "5,0,0,0,0,0,79,0", short: res("FM3  (Normal)"), withValue: res("FM3  (Normal)"), withDirection: res("FM3  (Normal)")},
		{name: "flight mode", in: "2,0,0,0,0,0,79,0", short: res("FM1  (Thermal)"), withValue: res("FM1  (Thermal)"), withDirection: res("FM1  (Thermal)")},
		{name: "unknown flight mode", in: "4,0,0,0,0,0,79,0", short: types.MissingLabel, withValue: types.MissingLabel, withDirection: types.MissingLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &format.Diagnostics{}
			sw := newTestDecoder(t, d).Switch(tt.in)
			assert.Equal(t, tt.short, sw.Short, "short")
			assert.Equal(t, tt.withValue, sw.WithValue, "with value")
			assert.Equal(t, tt.withDirection, sw.WithDirection, "with direction")
			assert.Equal(t, tt.proportional, sw.Proportional, "proportional")
			assert.Equal(t, tt.misses, d.Count(), "misses")
		})
	}
}

func res(text string) types.Label {
	return types.Resolve(text)
}

// Override codes consult only their own table: varying the fields the
// generic path would read never changes the result.
func TestDecoderOverridesIgnoreGenericFields(t *testing.T) {
	dc := newTestDecoder(t, nil)
	for _, code := range []int64{OverrideTimer, OverrideFunction, OverrideServo, OverrideFlightMode} {
		for primary := int64(0); primary < 30; primary++ {
			base := dc.Decode(Reference{primary, 0, 0, 0, 0, 0, code, 0})
			for _, ref := range []Reference{
				{primary, 1, 0, 0, 0, 4000, code, 0},
				{primary, 0, 0, 1, 1, -4000, code, -1},
			} {
				got := dc.Decode(ref)
				assert.Equal(t, base.Short, got.Short, "code %d primary %d", code, primary)
				assert.Equal(t, base.WithValue, got.WithValue, "code %d primary %d", code, primary)
			}
		}
	}
}

func TestDecoderFieldCountAlwaysUnresolved(t *testing.T) {
	for n := 1; n <= 12; n++ {
		if n == ReferenceFields {
			continue
		}
		s := "9"
		for i := 1; i < n; i++ {
			s += ",0"
		}
		t.Run(fmt.Sprintf("%d fields", n), func(t *testing.T) {
			d := &format.Diagnostics{}
			sw := newTestDecoder(t, d).Switch(s)
			assert.Equal(t, uniform(types.UnresolvedLabel), sw)
			assert.Equal(t, 1, d.Count())
		})
	}
}

func TestDecoderNilTables(t *testing.T) {
	d := &format.Diagnostics{}
	dc := NewDecoder(Tables{}, d)
	assert.Equal(t, types.MissingLabel, dc.Switch("0,0,0,0,0,0,77,0").Short)
	assert.Equal(t, types.MissingLabel, dc.Switch("0,0,0,0,0,0,76,0").Short)
	assert.Equal(t, types.MissingLabel, dc.Switch("0,0,0,0,0,0,79,0").Short)
	assert.Equal(t, res("O1"), dc.Switch("0,0,0,0,0,0,78,0").Short)
	assert.Equal(t, res("SA  ↑"), dc.Switch("9,0,0,0,0,1,-1,0").WithValue)
	assert.Equal(t, 0, d.Count())
}

func TestDecoderTrySwitch(t *testing.T) {
	d := &format.Diagnostics{}
	dc := newTestDecoder(t, d)

	_, ok := dc.TrySwitch("Altitude")
	assert.False(t, ok)
	_, ok = dc.TrySwitch("")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Count())

	sw, ok := dc.TrySwitch("11,0,0,0,0,4000,-1,0")
	assert.True(t, ok)
	assert.Equal(t, res("SC  ↑"), sw.WithDirection)
}

func TestAssigned(t *testing.T) {
	assert.True(t, Assigned("9,0,0,0,0,0,-1,0"))
	assert.True(t, Assigned("0,0,0,0,0,0,3,0"))
	assert.True(t, Assigned("0,0,0,0,0,0,77,0"))
	assert.False(t, Assigned("0,0,0,0,0,0,-1,0"))
	assert.False(t, Assigned(""))
	assert.False(t, Assigned("junk"))
}

func TestControlTables(t *testing.T) {
	name, ok := ControlName(4)
	assert.True(t, ok)
	assert.Equal(t, "P3", name)
	_, ok = ControlName(0)
	assert.False(t, ok)
	_, ok = ControlName(27)
	assert.False(t, ok)

	assert.True(t, IsProportionalControl("P10"))
	assert.False(t, IsProportionalControl("SA"))
	assert.True(t, IsGenuineSwitch("SP"))
	assert.False(t, IsGenuineSwitch("P1"))
	assert.Len(t, GenuineSwitches(), 16)
	assert.Len(t, seventhPosition, 130)
	assert.Equal(t, "timer", seventhPosition[OverrideTimer])
	assert.Equal(t, "flight mode", seventhPosition[OverrideFlightMode])

	physical := PhysicalControls()
	assert.Len(t, physical, 26+8+6)
	assert.Contains(t, physical, "GHi")
	assert.Contains(t, physical, "Tr6")
	assert.NotContains(t, physical, "nix")
	assert.NotContains(t, physical, "Log1")
}

func TestCurve(t *testing.T) {
	tests := []struct {
		code      int64
		label     types.Label
		hasPoints bool
		constant  bool
		misses    int
	}{
		{code: 0, label: res("Standard")},
		{code: 1, label: res("Constant"), constant: true},
		{code: 7, label: res("±symmetric")},
		{code: 8, label: res("3-point"), hasPoints: true},
		{code: 11, label: res("9-point"), hasPoints: true},
		{code: 12, label: res("Gyro")},
		{code: 13, label: types.UnresolvedLabel, misses: 1},
		{code: -1, label: types.UnresolvedLabel, misses: 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			d := &format.Diagnostics{}
			c := Curve(tt.code, d)
			assert.Equal(t, tt.label, c.Label)
			assert.Equal(t, tt.hasPoints, c.HasPoints)
			assert.Equal(t, tt.constant, c.Constant)
			assert.Equal(t, tt.misses, d.Count())
		})
	}
}

func TestFormatCurve(t *testing.T) {
	label, points := FormatCurve(1, []int64{-100, 100}, []int64{40, 40}, nil)
	assert.Equal(t, "Constant=40", label)
	assert.Empty(t, points)

	label, points = FormatCurve(8, []int64{-100, 0, 100}, []int64{-80, 5, 100}, nil)
	assert.Equal(t, "3-point", label)
	assert.Equal(t, "-100|-80  0|5  100|100", points)

	label, points = FormatCurve(0, []int64{-100, 100}, []int64{-100, 100}, nil)
	assert.Equal(t, "Standard", label)
	assert.Empty(t, points)

	d := &format.Diagnostics{}
	label, _ = FormatCurve(40, nil, nil, d)
	assert.Equal(t, format.UnknownMarker, label)
	assert.Equal(t, 1, d.Count())
}
