// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package jsnview

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
)

// Tables is the resolved symbol tables of one model file.
type Tables struct {
	Transmitter string         `yaml:"transmitter"`
	Surfaces    map[string]int `yaml:"surfaces,omitempty"`
	TailMix     string         `yaml:"tail_mix,omitempty"`
	Butterfly   bool           `yaml:"butterfly"`
	Functions   []Entry        `yaml:"functions"`
	Servos      []Entry        `yaml:"servos"`
	FlightModes []Entry        `yaml:"flight_modes"`
	Timers      []Entry        `yaml:"timers"`
	Sensors     []Sensor       `yaml:"sensors,omitempty"`
	Lua         []int64        `yaml:"lua,omitempty"`
	Unknown     int            `yaml:"unknown"`
}

// Entry is one table slot. Number is the display number where the report
// shows one.
type Entry struct {
	ID     int64  `yaml:"id"`
	Number int    `yaml:"number,omitempty"`
	Label  string `yaml:"label"`
}

// Sensor is one telemetry device with its parameter labels.
type Sensor struct {
	ID     string           `yaml:"id"`
	Name   string           `yaml:"name"`
	Params map[int64]string `yaml:"params,omitempty"`
}

// Tables resolves the symbol tables of one model file.
func (v *Viewer) Tables(data []byte) (*Tables, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	d := &format.Diagnostics{}
	st := symbols.Build(doc, d)

	out := &Tables{
		Transmitter: st.Transmitter.Name,
		TailMix:     st.Surfaces.TailMix.String(),
		Butterfly:   st.Surfaces.NeedsButterfly,
		Functions:   []Entry{},
		Servos:      []Entry{},
		FlightModes: []Entry{},
		Timers:      []Entry{},
	}
	if !st.Transmitter.Known() {
		out.Transmitter = fmt.Sprintf("unknown (%d)", st.Transmitter.Code)
	}

	for s := types.Aileron; s <= types.Gear; s++ {
		if n := st.Surfaces.Count(s); n > 0 {
			if out.Surfaces == nil {
				out.Surfaces = map[string]int{}
			}
			out.Surfaces[s.String()] = n
		}
	}
	for _, id := range st.Functions.Defined() {
		label, _ := st.Functions.Lookup(id)
		out.Functions = append(out.Functions, Entry{ID: id, Label: label})
	}
	for slot := int64(1); slot < symbols.ServoSlots; slot++ {
		l := st.Servos.Slot(slot)
		if l.Kind == types.Absent {
			continue
		}
		out.Servos = append(out.Servos, Entry{ID: slot, Label: l.Or(format.UnknownMarker)})
	}
	for _, id := range st.FlightModes.IDs() {
		label, number, _ := st.FlightModes.Lookup(id)
		out.FlightModes = append(out.FlightModes, Entry{ID: id, Number: number, Label: label})
	}
	for _, id := range st.Timers.Order() {
		label, number, _ := st.Timers.Lookup(id)
		out.Timers = append(out.Timers, Entry{ID: id, Number: number, Label: label})
	}
	for _, id := range st.Sensors.IDs() {
		dev, _ := st.Sensors.Device(id)
		sensor := Sensor{ID: format.DeviceID(id).Or(format.UnknownMarker), Name: dev.Name()}
		for p := int64(1); p < symbols.SensorParams; p++ {
			if label, ok := dev.Param(p); ok {
				if sensor.Params == nil {
					sensor.Params = map[int64]string{}
				}
				sensor.Params[p] = label
			}
		}
		out.Sensors = append(out.Sensors, sensor)
	}
	for i := 1; i <= st.Lua.Len(); i++ {
		if app, ok := st.Lua.App(i); ok {
			out.Lua = append(out.Lua, app)
		}
	}
	out.Unknown = d.Count()
	return out, nil
}

// WriteTables writes the symbol tables of one model file as YAML.
func (v *Viewer) WriteTables(w io.Writer, data []byte) error {
	t, err := v.Tables(data)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}
	return enc.Close()
}
