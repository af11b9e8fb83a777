// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Surface indexes the servo-count vector of an aero model.
type Surface int

const (
	Aileron Surface = iota
	Flap
	Elevator
	Rudder
	Airbrake
	Motor
	Gear
	surfaceCount
)

var surfaceNames = [surfaceCount]string{
	"aileron", "flap", "elevator", "rudder", "airbrake", "motor", "gear",
}

func (s Surface) String() string {
	if s < 0 || s >= surfaceCount {
		return "unknown"
	}
	return surfaceNames[s]
}

// TailMix identifies the tail mixer a model uses.
type TailMix int

const (
	TailMixNone     TailMix = iota // No tail mixer
	TailMixVTail                   // V-tail, two servos for elevator and rudder
	TailMixAilvator                // Elevator halves also act as ailerons
	TailMixDelta                   // Delta/elevon, no tail
)

// String returns the report label of the tail mix.
func (m TailMix) String() string {
	switch m {
	case TailMixVTail:
		return "V-Tail Mix"
	case TailMixAilvator:
		return "Ailevator"
	case TailMixDelta:
		return "Delta/Elevon Mix"
	default:
		return ""
	}
}

// Surfaces is the per-surface servo configuration of a model. Report
// generators branch on it to decide how many parallel columns a control
// surface needs.
type Surfaces struct {
	Servos         [surfaceCount]int // Servo count per Surface
	NeedsButterfly bool              // Butterfly mixing implied by tail/wing
	TailMix        TailMix
}

// Count returns the servo count of a surface.
func (s Surfaces) Count(surface Surface) int {
	if surface < 0 || surface >= surfaceCount {
		return 0
	}
	return s.Servos[surface]
}

// surfaceFunctions maps standard function labels to the surface they drive.
var surfaceFunctions = map[string]Surface{
	"Ailerons":  Aileron,
	"Flaps":     Flap,
	"Elevator":  Elevator,
	"Rudder":    Rudder,
	"Airbrake":  Airbrake,
	"Airbrake.": Airbrake,
	"Throttle":  Motor,
	"Gear":      Gear,
	"Quer":      Aileron,
	"Klappen":   Flap,
	"Höhe":      Elevator,
	"Seite":     Rudder,
	"Störkl.":   Airbrake,
	"Drossel":   Motor,
	"Fahrwerk":  Gear,
}

// SurfaceOf returns the surface driven by a function label, if any. Both
// the English and the German standard labels are recognized since the
// label text is whatever the transmitter stored.
func SurfaceOf(functionLabel string) (Surface, bool) {
	s, ok := surfaceFunctions[functionLabel]
	return s, ok
}

// Orientation holds the default orientation of the genuine switches SA..SP
// as configured on the transmitter. A false entry means the switch is
// mounted reversed.
type Orientation map[string]bool

// Normal reports whether the named switch has normal orientation. Switches
// without an entry are normal.
func (o Orientation) Normal(name string) bool {
	v, ok := o[name]
	return !ok || v
}
