// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
)

// TimerSlots is the number of timer ids a model can use.
const TimerSlots = 11

// Timers maps timer ids to labels and keeps the 1-based display order,
// which differs from the ids once timers have been deleted.
type Timers struct {
	labels [TimerSlots]string
	set    [TimerSlots]bool
	order  []int64
}

// BuildTimers reads the Timers record.
func BuildTimers(doc *document.Document, d *format.Diagnostics) *Timers {
	t := &Timers{}
	for _, item := range doc.Root.Get("Timers").Data() {
		id := item.Get("ID").Int()
		if id < 0 || id >= TimerSlots {
			d.Miss()
			continue
		}
		t.labels[id] = item.Get("Label").Str()
		t.set[id] = true
		t.order = append(t.order, id)
	}
	return t
}

// InRange reports whether id is a valid timer id.
func (t *Timers) InRange(id int64) bool {
	return id >= 0 && id < TimerSlots
}

// Lookup returns the label and 1-based display number of timer id.
func (t *Timers) Lookup(id int64) (label string, number int, ok bool) {
	if !t.InRange(id) || !t.set[id] {
		return "", 0, false
	}
	for i, o := range t.order {
		if o == id {
			number = i + 1
			break
		}
	}
	return t.labels[id], number, true
}

// Order returns the timer ids in display order.
func (t *Timers) Order() []int64 {
	out := make([]int64, len(t.order))
	copy(out, t.order)
	return out
}
