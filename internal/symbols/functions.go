// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const (
	// FunctionSlots is the number of function ids a model can use.
	FunctionSlots = 51
	// LastBuiltinFunction is the highest id of a transmitter-defined
	// function; higher ids are user defined.
	LastBuiltinFunction = 13

	butterflyID = 31
	brakeID     = 5
	flapID      = 6
)

// ButterflyLabel is the label of the virtual butterfly function.
const ButterflyLabel = "Butterfly"

// Functions maps function ids to their labels.
type Functions struct {
	labels [FunctionSlots]string
	set    [FunctionSlots]bool
}

// BuildFunctions reads the Functions record. Models with two or more
// aileron servos get the virtual Butterfly function, and the airbrake and
// flap functions are restored if the user deleted them.
func BuildFunctions(doc *document.Document, surfaces types.Surfaces, d *format.Diagnostics) *Functions {
	f := &Functions{}
	for _, item := range doc.Root.Get("Functions").Data() {
		id := item.Get("ID").Int()
		if id < 0 || id >= FunctionSlots {
			d.Miss()
			continue
		}
		f.labels[id] = item.Get("Label").Str()
		f.set[id] = true
	}

	if surfaces.Count(types.Aileron) >= 2 {
		f.define(butterflyID, ButterflyLabel)
		if !f.set[brakeID] {
			f.define(brakeID, "Brk")
		}
		if !f.set[flapID] {
			f.define(flapID, "Flp")
		}
	}
	return f
}

func (f *Functions) define(id int, label string) {
	f.labels[id] = label
	f.set[id] = true
}

// Lookup returns the label of function id.
func (f *Functions) Lookup(id int64) (string, bool) {
	if id < 0 || id >= FunctionSlots || !f.set[id] {
		return "", false
	}
	return f.labels[id], true
}

// Label returns the label of function id, Absent when undefined.
func (f *Functions) Label(id int64) types.Label {
	if l, ok := f.Lookup(id); ok {
		return types.Resolve(l)
	}
	if id < 0 || id >= FunctionSlots {
		return types.UnresolvedLabel
	}
	return types.AbsentLabel
}

// Defined returns the ids of all defined functions in ascending order.
func (f *Functions) Defined() []int64 {
	var ids []int64
	for i, ok := range f.set {
		if ok {
			ids = append(ids, int64(i))
		}
	}
	return ids
}
