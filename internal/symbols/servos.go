// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const (
	// ServoSlots is the number of output slots, 1-based; slot 0 is unused.
	ServoSlots = 25

	firstServoCode = 257 // Aileron1
	firstUserCode  = 288 // first code naming a user-defined function
	lastUserCode   = 300 // exclusive
	// firstUserFunction is the function id the first user servo code maps to.
	firstUserFunction = LastBuiltinFunction + 1
)

// servoNames are the transmitter's servo names, indexed by code-257.
// Codes 288..299 are user defined and never read from this table.
var servoNames = []string{
	"Aileron1", "Aileron2", "Aileron3", "Aileron4", "Flap1",
	"Flap2", "Flap3", "Flap4", "Rudder1", "Rudder2", "Elevator1", "Elevator2",
	format.UnknownMarker, format.UnknownMarker, "Throttle1", "Throttle2", "Throttle3", "Throttle4",
	"Gear1", "Gear2", "Gear3", "Gear4", "Airbrake1",
	"Airbrake2", "Roll", "Elevator", "Pitch", format.UnknownMarker, "Yaw", format.UnknownMarker,
	"Gyro sens.", format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, "Gyro sens.2", "Gyro sens.3", "Gimbal R", "Gimbal P", "Gimbal Y",
	"Mode", format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker,
}

// Servos maps 1-based output slots to derived servo names.
type Servos struct {
	slots [ServoSlots]types.Label
}

// BuildServos reads the Servos record in two passes. The first collects
// the user-defined codes 288..299; the second names every slot, mapping a
// user code to the label of function 14+(code-288).
//
// This offset rule is inferred from real files and may not hold for
// models using all custom slots; it is kept as the transmitter appears to
// behave.
func BuildServos(doc *document.Document, functions *Functions, d *format.Diagnostics) *Servos {
	rows := doc.Root.Get("Servos").Data()

	userNames := make(map[int64]types.Label)
	for _, item := range rows {
		code := item.Get("Servo-Code").Int()
		if code >= firstUserCode && code < lastUserCode {
			fn := firstUserFunction + (code - firstUserCode)
			userNames[code] = types.AbsentLabel
			if l, ok := functions.Lookup(fn); ok {
				userNames[code] = types.Resolve(l)
			}
		}
	}

	s := &Servos{}
	for _, item := range rows {
		slot := item.Get("Index").Int() + 1
		code := item.Get("Servo-Code").Int()
		if code < firstServoCode {
			continue
		}
		if slot < 1 || slot >= ServoSlots {
			d.Miss()
			continue
		}

		var name types.Label
		switch {
		case code >= firstUserCode && code < lastUserCode:
			name = userNames[code]
		case code-firstServoCode < int64(len(servoNames)) && servoNames[code-firstServoCode] != format.UnknownMarker:
			name = types.Resolve(servoNames[code-firstServoCode])
		default:
			name = types.UnresolvedLabel
			d.Miss()
		}
		s.slots[slot] = name
	}
	return s
}

// Slot returns the name of a 1-based output slot. Unassigned slots are
// Absent; slots with an unknown servo code are Unresolved.
func (s *Servos) Slot(slot int64) types.Label {
	if slot < 1 || slot >= ServoSlots {
		return types.UnresolvedLabel
	}
	return s.slots[slot]
}
