// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols builds the document-scoped symbol tables that references
// resolve against. Each builder takes the tables it depends on as
// arguments, so the build order is fixed by the call graph.
package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

// Tables holds every symbol table of one document.
type Tables struct {
	Transmitter Transmitter
	Surfaces    types.Surfaces
	Functions   *Functions
	Servos      *Servos
	FlightModes *FlightModes
	Timers      *Timers
	Sensors     *Sensors
	Lua         *Lua
}

// Build runs every builder against doc in dependency order. Tables are
// never shared between documents.
func Build(doc *document.Document, d *format.Diagnostics) *Tables {
	t := &Tables{}
	t.Transmitter = BuildTransmitter(doc)
	t.Surfaces = BuildSurfaces(doc, d)
	t.Functions = BuildFunctions(doc, t.Surfaces, d)
	t.Servos = BuildServos(doc, t.Functions, d)
	t.FlightModes = BuildFlightModes(doc)
	t.Timers = BuildTimers(doc, d)
	t.Sensors = BuildSensors(doc, d)
	t.Lua = BuildLua(doc)
	return t
}
