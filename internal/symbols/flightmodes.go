// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
)

// FlightMode is one stored flight mode.
type FlightMode struct {
	ID    int64
	Label string
}

// FlightModes holds the flight modes in storage order and the display
// sequence the transmitter shows them in.
type FlightModes struct {
	modes    []FlightMode
	sequence []int64
}

// BuildFlightModes reads the Flight-Modes record. The transmitter lists
// the default mode, which is stored first, last; all others keep their
// relative order.
func BuildFlightModes(doc *document.Document) *FlightModes {
	fm := &FlightModes{}
	for _, item := range doc.Root.Get("Flight-Modes").Data() {
		fm.modes = append(fm.modes, FlightMode{
			ID:    item.Get("ID").Int(),
			Label: item.Get("Label").Str(),
		})
	}
	fm.sequence = DisplaySequence(fm.IDs())
	return fm
}

// DisplaySequence rotates stored ids so the first (default) id comes last.
func DisplaySequence(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seq := make([]int64, 0, len(ids))
	seq = append(seq, ids[1:]...)
	return append(seq, ids[0])
}

// Len returns the number of flight modes.
func (fm *FlightModes) Len() int {
	return len(fm.modes)
}

// IDs returns the flight mode ids in storage order.
func (fm *FlightModes) IDs() []int64 {
	ids := make([]int64, len(fm.modes))
	for i, m := range fm.modes {
		ids[i] = m.ID
	}
	return ids
}

// Sequence returns the display sequence.
func (fm *FlightModes) Sequence() []int64 {
	out := make([]int64, len(fm.sequence))
	copy(out, fm.sequence)
	return out
}

// At returns the flight mode at storage position i. Sections such as
// Function-Specs refer to flight modes by position, not by id.
func (fm *FlightModes) At(i int64) (FlightMode, bool) {
	if i < 0 || i >= int64(len(fm.modes)) {
		return FlightMode{}, false
	}
	return fm.modes[i], true
}

// Default returns the default flight mode.
func (fm *FlightModes) Default() (FlightMode, bool) {
	return fm.At(0)
}

// Lookup returns the label and 1-based display number of flight mode id.
func (fm *FlightModes) Lookup(id int64) (label string, number int, ok bool) {
	for _, m := range fm.modes {
		if m.ID == id {
			label, ok = m.Label, true
			break
		}
	}
	if !ok {
		return "", 0, false
	}
	return label, fm.Number(id), true
}

// Number returns the 1-based display number of flight mode id, or 0.
func (fm *FlightModes) Number(id int64) int {
	for i, s := range fm.sequence {
		if s == id {
			return i + 1
		}
	}
	return 0
}
