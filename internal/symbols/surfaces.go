// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

// WingTypes are the report labels of the Type-Specific Wing-Type codes.
var WingTypes = []string{
	"0 Flaps | 1 Ail", "0 Flaps | 2 Ail", "1 Flap | 2 Ail", "2 Flaps | 2 Ail",
	"4 Flaps | 2 Ail", "2 Flaps | 4 Ail", "4 Flaps | 4 Ail",
}

var (
	wingAilerons = []int{1, 2, 2, 2, 4, 2, 4}
	wingFlaps    = []int{0, 0, 1, 2, 2, 4, 4}
)

// TailTypes are the report labels of the Type-Specific Tail-Type codes.
var TailTypes = []string{
	"Normal   1H1V", "V-Tail   2H", "Ailvator 2H1V", "Normal   2H2V",
	"None - Elevon/Delta", "None",
}

var (
	tailElevators = []int{1, 2, 2, 2, 2, 0}
	tailRudders   = []int{1, 2, 1, 2, 1, 0}
)

// BuildSurfaces derives the servo-count vector from the Type-Specific
// record. Non-aero models have no surfaces. Unknown wing or tail codes
// count as a miss and leave the affected surfaces at zero.
func BuildSurfaces(doc *document.Document, d *format.Diagnostics) types.Surfaces {
	var s types.Surfaces
	ts := doc.Root.Get("Type-Specific")
	if !ts.Has("Model-Type") || ts.Get("Model-Type").Str() != "Aero" {
		return s
	}

	if ts.Has("Wing-Type") {
		w := ts.Get("Wing-Type").Int()
		if w >= 0 && w < int64(len(wingAilerons)) {
			s.Servos[types.Aileron] = wingAilerons[w]
			s.Servos[types.Flap] = wingFlaps[w]
		} else {
			d.Miss()
		}
	}

	if ts.Has("Tail-Type") {
		tail := ts.Get("Tail-Type").Int()
		if tail >= 0 && tail < int64(len(tailElevators)) {
			s.Servos[types.Elevator] = tailElevators[tail]
			s.Servos[types.Rudder] = tailRudders[tail]
		} else {
			d.Miss()
		}
		switch tail {
		case 1:
			s.TailMix = types.TailMixVTail
		case 2:
			s.TailMix = types.TailMixAilvator
			s.NeedsButterfly = s.Servos[types.Aileron] >= 2
		case 4:
			s.TailMix = types.TailMixDelta
			s.NeedsButterfly = true
		}
	}

	s.Servos[types.Motor] = int(ts.Get("Motor-Count").Int())
	s.Servos[types.Gear] = int(ts.Get("Gear-Servos").Int())
	s.Servos[types.Airbrake] = int(ts.Get("Airbrake-Servos").Int())
	return s
}

// Transmitter describes the transmitter a model file was exported from.
type Transmitter struct {
	Code     int64  // Global.Version
	Name     string // Empty when the code is unknown
	HasAccel bool   // Transmitter has a built-in accelerometer
}

// Known reports whether the transmitter code was recognized.
func (t Transmitter) Known() bool {
	return t.Name != ""
}

type txType struct {
	name     string
	hasAccel bool
}

var transmitters = map[int64]txType{
	652:  {"DC-16 V2", false},
	653:  {"DS-16 V2", true},
	674:  {"DC-16", false},
	675:  {"DS-16", true},
	676:  {"DS-14", true},
	677:  {"DC-14", false},
	678:  {"DC-24", false},
	679:  {"DS-24", true},
	680:  {"DS-12", true},
	3857: {"DC-14 V2", false},
	3858: {"DS-14 V2", true},
	3859: {"DC-24", false},
	3860: {"DS-24", true},
	3861: {"DC-16 V2", false},
	3862: {"DS-16 V2", true},
	3863: {"DC-14 V2", false},
	3864: {"DS-14 V2", true},
	3865: {"DS-12", true},
}

// BuildTransmitter identifies the transmitter from Global.Version.
// Version 1 is written by firmware older than 5 and carries no type.
func BuildTransmitter(doc *document.Document) Transmitter {
	code := doc.Root.Get("Global").Get("Version").Int()
	t := Transmitter{Code: code}
	if tx, ok := transmitters[code]; ok {
		t.Name = tx.name
		t.HasAccel = tx.hasAccel
	}
	return t
}
