// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package format provides value formatting for report cells: decimal
// scaling, durations, device ids, booleans, and the diagnostics counter
// that records data the decoder does not recognize.
package format

// UnknownMarker is the report text of a value the decoder does not
// recognize.
const UnknownMarker = "?zefix?"

// Diagnostics counts unresolved-reference events for one document. A nil
// *Diagnostics is valid and discards events.
type Diagnostics struct {
	misses int
}

// Miss records one decode miss and returns UnknownMarker so callers can
// write the marker in place of the value.
func (d *Diagnostics) Miss() string {
	if d != nil {
		d.misses++
	}
	return UnknownMarker
}

// Count returns the number of misses recorded since the last Reset.
func (d *Diagnostics) Count() int {
	if d == nil {
		return 0
	}
	return d.misses
}

// Reset clears the counter.
func (d *Diagnostics) Reset() {
	if d != nil {
		d.misses = 0
	}
}
