// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
)

var priorities = []string{"Low", "Medium", "High"}

// notSpoken is the sensor data type of coordinates, which have no voice
// settings.
const notSpoken = 9

func (g *generator) sensors() {
	g.title("Sensors & Variables:")
	g.row("Sensor", "", "Measurement", "Repeat", "Trigger", "Priority")

	voice := g.root.Get("Voice")
	receiver := []struct{ key, label string }{
		{"U-Rx", "Voltage Rx"},
		{"A1", "Antenna 1"},
		{"A2", "Antenna 2"},
	}
	for _, r := range receiver {
		v := voice.Get(r.key)
		g.row("Receiver", "", r.label,
			format.YesNo(v.IntAt(0), g.diag),
			format.YesNo(v.IntAt(1), g.diag),
			format.Pick(priorities, v.IntAt(2), g.diag))
	}

	var (
		current    int64
		deviceName string
		started    bool
	)
	for _, item := range g.root.Get("Telem-Detect").Data() {
		id := item.Get("ID").Int()
		param := item.Get("Param").Int()
		label := item.Get("Label").Str()
		if param < 0 || param >= symbols.SensorParams {
			// Counted when the sensor table was built.
			continue
		}
		if param == 0 {
			current, deviceName, started = id, label, true
			g.row(label, "ID  "+cell(format.DeviceID(id)))
			continue
		}

		sensor, missing := deviceName, ""
		if !started || id != current {
			sensor, missing = "ID  "+itoa(id), "header missing"
		}
		if item.Get("DataType").Int() == notSpoken {
			g.row(sensor, itoa(param), label, "", "", "", missing)
			continue
		}
		g.row(sensor, itoa(param), label,
			format.YesNo(item.Get("Rep").Int(), g.diag),
			format.YesNo(item.Get("Trig").Int(), g.diag),
			format.Pick(priorities, item.Get("Prio").Int(), g.diag),
			missing)
	}
}

// sensorValue returns "device;measurement" for a sensor reference.
func (g *generator) sensorValue(id, param int64) (string, bool) {
	device, measurement, ok := g.t.Sensors.Lookup(id, param)
	if !ok {
		return "", false
	}
	return device + ";" + measurement, true
}

func missingSensor(id int64) string {
	return "Sensor " + cell(format.DeviceID(id)) + " missing"
}

var announcedSystemValues = []string{
	format.UnknownMarker, format.UnknownMarker, "Antenna 1", "Antenna 2", "Voltage RX",
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, format.UnknownMarker,
	format.UnknownMarker, format.UnknownMarker, format.UnknownMarker, "Q (Rx1)",
}

// Ids below this bound name the system or a timer rather than a sensor.
const systemIDBound = 30

func (g *generator) voiceAnnouncements() {
	g.title("Single voice announcements")
	items := g.root.Get("Telem-Voice").Data()
	if len(items) == 0 {
		g.row("no voice announcements")
		return
	}
	g.row("Switch", "Sensor", "Measurement")
	for _, item := range items {
		id := item.Get("ID").Int()
		param := item.Get("Param").Int()
		sw := cell(g.sw(item.Get("Sw")).WithValue)

		switch {
		case id == 0 && param == 0:
			g.row(sw, "-", "-")
		case id == 0 && (param < 0 || param >= int64(len(announcedSystemValues))):
			g.row(sw, g.diag.Miss())
		case id == 0:
			g.row(sw, "System", format.Pick(announcedSystemValues, param, g.diag))
		case id > 0 && id < systemIDBound:
			if g.t.Timers.InRange(id) {
				g.row(sw, "Timer", g.timerLabel(id))
			} else {
				g.row(sw, "Timer", "does not exist")
			}
		case id < 0 && id > -systemIDBound:
			g.row(sw, "Timer", "does not exist")
		default:
			if v, ok := g.sensorValue(id, param); ok {
				g.row(sw, v)
			} else {
				g.row(sw, missingSensor(id))
			}
		}
	}
}

var comparisons = []string{"<", ">", "="}

func (g *generator) telemetryControls() {
	if !g.root.Has("Tel-Ctrl") {
		return
	}
	g.title("Telemetry Controls:")
	items := g.root.Get("Tel-Ctrl").Data()

	last := int64(-1)
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Get("Enabled").Int() != 0 || it.Get("Label").Str() != "" ||
			it.Get("Sensor-ID").Int() != 0 || g.assigned(it.Get("Switch")) ||
			it.Get("Prop").Int() != 0 {
			last = int64(i)
			break
		}
	}
	if last < 0 {
		g.row("no telemetry controls")
		return
	}

	g.row("Number", "Label", "Sensor", "Measurement", "Type of control", "X < = > / Min",
		"Decision level / Center", "Hysteresis / Max", "Duration / Filtering", "Default %", "Switch", "Enabled")
	for _, it := range items {
		idx := it.Get("Index").Int()
		if idx > last {
			return
		}
		sensor, ok := g.sensorValue(it.Get("Sensor-ID").Int(), it.Get("Param").Int())
		if !ok {
			sensor = "-;-"
		}
		cells := []string{"MX" + itoa(idx+1), it.Get("Label").Str(), sensor}

		dec := int(it.Get("Decimals").Int())
		if it.Get("Prop").Int() == 0 {
			data := it.Get("Bin-Data")
			cells = append(cells, "Switch",
				format.Pick(comparisons, data.IntAt(0), g.diag),
				format.Decimal(dec, data.IntAt(2)),
				format.Decimal(dec, data.IntAt(3)),
				format.Tenths(data.IntAt(1)))
		} else {
			data := it.Get("Prop-Data")
			cells = append(cells, "Proportional",
				format.Decimal(dec, data.IntAt(0)),
				format.Decimal(dec, data.IntAt(1)),
				format.Decimal(dec, data.IntAt(2)),
				format.Decimal(0, data.IntAt(3)))
		}
		cells = append(cells,
			it.Get("Default").Str(),
			cell(g.sw(it.Get("Switch")).WithValue),
			format.YesNo(it.Get("Enabled").Int(), g.diag))
		g.row(cells...)
	}
}

func (g *generator) assigned(n document.Node) bool {
	return g.sw(n).Short.Kind != types.Absent
}

var displayedSystemValues = []string{
	format.UnknownMarker, "Flight Modes", "Antenna", format.UnknownMarker, "Voltage RX", "User Name",
	format.UnknownMarker, "Jetibox", "Trim", "Tx Battery", "Model Time", "Antenna 900MHz",
	format.UnknownMarker, "Model Image", format.UnknownMarker,
}

const (
	displayEmpty = iota
	displayTimer
	displaySensor
	displaySystem
	displayLua

	displayJetibox = 7
)

func (g *generator) displayedTelemetry() {
	def, _ := g.t.FlightModes.Default()
	if def.Label == "Default" {
		g.title("Displayed-Telemetry;(of Flight Mode  " + def.Label + ")")
	} else {
		g.title("Displayed-Telemetry;(of Default Flight Mode  " + def.Label + ")")
	}

	items := g.root.Get("Displayed-Telemetry").Items()
	if len(items) == 0 {
		g.row("no display")
		return
	}
	g.row("Number", "Content", "Double")
	for i, item := range items {
		if item.Get("Flight-Mode").Int() > 0 {
			return
		}
		id := item.Get("ID").Int()
		double := format.YesNo(item.Get("DblSize").Int(), g.diag)

		var content string
		switch item.Get("Item-Type").Int() {
		case displayEmpty:
			content = "empty"
		case displayTimer:
			content = "Timer: " + g.timerLabel(id)
		case displaySensor:
			if device, measurement, ok := g.t.Sensors.Lookup(id, item.Get("Param").Int()); ok {
				content = device + ": " + measurement
			} else {
				content = missingSensor(id)
			}
		case displaySystem:
			content = format.Pick(displayedSystemValues, id, g.diag)
			if id == displayJetibox {
				double = "-"
			}
		case displayLua:
			content = "-"
			if g.t.Lua.Contains(id) {
				content = "Lua App  " + itoa(id)
			}
			double = "-"
		default:
			content = g.diag.Miss()
		}
		g.row(strconv.Itoa(i+1), content, double)
	}
}

var varioModes = []string{"Off", "JB Profi Alarm", "EX Value", "Lua"}

func (g *generator) vario() {
	g.title("Vario:")
	v := g.root.Get("Vario")
	if !v.Has("Setting") {
		g.row("Deprecated data format", "update transmitter")
		return
	}
	mode := format.Pick(varioModes, v.Get("Mode").Int(), g.diag)
	sw := cell(g.sw(v.Get("Switch")).WithValue)

	header := false
	for _, s := range v.Get("Setting").Items() {
		dec := int(s.Get("Decimals").Int())
		enabled := format.YesNo(s.Get("En").Int(), g.diag)
		sensor, ok := g.sensorValue(s.Get("Sensor-ID").Int(), s.Get("Sensor-Par").Int())
		if !ok {
			continue
		}
		if !header {
			g.row("Mode", mode)
			g.row("Switch", sw)
			g.row("Sensor", "Measurement", "Dead Zone -", "Dead Zone +", "Range -", "Center", "Range +", "Enabled")
			header = true
		}
		g.row(sensor,
			format.Decimal(dec, s.Get("DeadZNeg").Int()),
			format.Decimal(dec, s.Get("DeadZPos").Int()),
			format.Decimal(dec, s.Get("Min").Int()),
			format.Decimal(dec, s.Get("Center").Int()),
			format.Decimal(dec, s.Get("Max").Int()),
			enabled)
	}
	if !header {
		g.row("no vario")
	}
}

var alarmRepeats = []string{"no", "yes", "3x"}

func (g *generator) alarms() {
	g.title("Alarms:")
	g.row("Number", "Sensor", "Measurement", "X <= / >", "Threshold", "Audio", "ActivationSw", "Repeat", "Ann cur val by voice", "Enabled")
	for i, a := range g.root.Get("Alarms").Data() {
		sensor, ok := g.sensorValue(a.Get("Sensor-ID").Int(), a.Get("Sensor-Param").Int())
		if !ok {
			sensor = ";"
		}
		if i == 0 {
			// The first alarm is the receiver voltage alarm.
			sensor = "Receiver;Voltage Rx"
		}
		compare := "<="
		if a.Get("Var-Greater").Int() == 1 {
			compare = ">"
		}
		g.row(
			strconv.Itoa(i+1),
			sensor,
			compare,
			format.Decimal(int(a.Get("Decimals").Int()), a.Get("Value").Int()),
			a.Get("File").Str(),
			cell(g.sw(a.Get("Switch")).WithValue),
			format.Pick(alarmRepeats, a.Get("Repeat").Int(), g.diag),
			format.YesNo(a.Get("Voice").Int(), g.diag),
			format.YesNo(a.Get("Active").Int(), g.diag),
		)
	}
}

func (g *generator) accelerometer() {
	a := g.root.Get("Accel")
	if !g.t.Transmitter.HasAccel || a.Len() == 0 {
		return
	}
	g.title("Accelerometer:")
	g.row("Axis", "Filtering", "Sensitivity", "Dead Zone", "Pitch Offset")
	for i, axis := range []string{"X", "Y", "Z"} {
		pitch := "-"
		if axis == "Y" {
			pitch = a.Get("NeutrZ").Index(0).Str()
		}
		g.row(axis, a.Get("Filter").Index(i).Str(), a.Get("Rate").Index(i).Str(), a.Get("DeadZ").Index(i).Str(), pitch)
	}
}

// lua lists the installed apps. App data comes in groups of a name
// followed by two values; only groups holding a switch or a sensor are
// shown, plus the first value of each app.
func (g *generator) lua() {
	g.title("Lua:")
	apps := g.root.Get("Lua").Items()
	if len(apps) == 0 {
		g.row("no Lua App")
		return
	}
	for i, app := range apps {
		cells := []string{strconv.Itoa(i + 1), "Lua App ID", app.Get("appID").Str()}
		var name, values string
		for n, dat := range app.Get("data").Items() {
			if values != "" {
				cells = append(cells, name, values)
			}
			values = ""
			if n%3 == 0 {
				name = dat.Str()
				continue
			}
			var found []string
			if sw, ok := g.dec.TrySwitch(dat.Str()); ok && sw.WithDirection.Kind != types.Absent {
				found = append(found, cell(sw.WithDirection))
			}
			if dat.IsInt() {
				if dev, ok := g.t.Sensors.Device(dat.Int()); ok {
					found = append(found, dev.Name())
				}
			}
			values = strings.Join(found, ";")
			if n == 2 && values == "" {
				values = dat.Str()
			}
		}
		if values != "" {
			cells = append(cells, name, values)
		}
		g.row(cells...)
	}
}
