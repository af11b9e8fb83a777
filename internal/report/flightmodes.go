// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/internal/decode"
	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const digitalTrims = 4

var trimModes = []string{"Centered", "Linear", "Thro-Low", "Thr-L 50%", "Thro-High"}

// trimFunctions returns the function ids of a flight mode's digital trims
// in ascending order.
func trimFunctions(mode document.Node) []int64 {
	trims := mode.Get("DigiTrim").Items()
	if len(trims) > digitalTrims {
		trims = trims[:digitalTrims]
	}
	ids := make([]int64, len(trims))
	for i, t := range trims {
		ids[i] = t.Get("FuncID").Int()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// digitalTrim returns the DigiTrim entry of a flight mode for function id.
func digitalTrim(mode document.Node, id int64) document.Node {
	for _, t := range mode.Get("DigiTrim").Items() {
		if t.Get("FuncID").Int() == id {
			return t
		}
	}
	return document.Node{}
}

func (g *generator) flightModes() {
	g.title("Flight Modes: general data  ")
	if sw := g.sw(g.root.Get("Common").Get("FM-Annonc")).WithValue; sw.Kind != types.Absent {
		g.row("Announce current flight mode", cell(sw))
	}

	modes := g.root.Get("Flight-Modes").Data()
	header := []string{"Number", "Label", "Delay", "Switch", "Audio"}
	if len(modes) == 0 {
		g.row(header...)
		return
	}

	// All flight modes share the trim function ids of the default mode.
	var trimIDs []int64
	for _, id := range trimFunctions(modes[0]) {
		if label, ok := g.t.Functions.Lookup(id); ok {
			trimIDs = append(trimIDs, id)
			header = append(header, "Trim "+label)
		}
	}
	g.row(header...)

	def, _ := g.t.FlightModes.Default()
	for _, m := range modes {
		id := m.Get("ID").Int()
		sw := cell(g.sw(m.Get("Switch")).WithValue)
		if sw == "-" && id == def.ID {
			sw = "is default"
		}
		cells := []string{
			strconv.Itoa(g.t.FlightModes.Number(id)),
			m.Get("Label").Str(),
			format.Tenths(m.Get("Delay").Int()) + "s",
			sw,
			m.Get("Audio").Str(),
		}
		for _, fid := range trimIDs {
			cells = append(cells, digitalTrim(m, fid).Get("Value").Str())
		}
		g.row(cells...)
	}

	g.title("Digital Trim;(of Default Flight Mode  " + def.Label + ")")
	g.row("Function", "Value", "Stored", "Mode", "Step", "Rate -", " Rate +")
	empty := true
	for _, fid := range trimFunctions(modes[0]) {
		label, ok := g.t.Functions.Lookup(fid)
		if !ok {
			continue
		}
		empty = false
		t := digitalTrim(modes[0], fid)
		g.row(
			label,
			t.Get("Value").Str(),
			t.Get("Stored").Str(),
			format.Pick(trimModes, t.Get("Mode").Int(), g.diag),
			t.Get("Step").Str(),
			t.Get("Max-Neg").Str(),
			t.Get("Max-Pos").Str(),
		)
	}
	if empty {
		g.row("no Digital Trim")
	}
}

// specColumns accumulates the per-function columns of one flight mode.
type specColumns struct {
	trim, dualRate, expo, drSwitch, curve, points strings.Builder
}

func (g *generator) functionSpecs() {
	specs := g.root.Get("Function-Specs").Items()

	titles := map[string]*strings.Builder{}
	kinds := []string{"Trim", "DR", "Expo", "Switch", "Curve"}
	for _, k := range kinds {
		titles[k] = &strings.Builder{}
		titles[k].WriteString("Flight Mode")
	}
	for _, item := range specs {
		if item.Get("Flight-Mode").Int() != 0 {
			break
		}
		fn := g.functionLabel(item.Get("Function-Id").Int())
		for _, k := range kinds {
			titles[k].WriteString(";" + fn + " " + k)
		}
	}

	var (
		labels                               []string
		trims, rates, expos, drSwitches, crv []string
		cur                                  *specColumns
		haveSwitch                           bool
	)
	flush := func() {
		if cur == nil {
			return
		}
		trims = append(trims, cur.trim.String())
		rates = append(rates, cur.dualRate.String())
		expos = append(expos, cur.expo.String())
		drSwitches = append(drSwitches, cur.drSwitch.String())
		c := cur.curve.String()
		if p := cur.points.String(); strings.Contains(p, "|") {
			c += "\n" + p
		}
		crv = append(crv, c)
	}

	last := int64(-1)
	for _, item := range specs {
		fm := item.Get("Flight-Mode").Int()
		if cur == nil || fm != last {
			flush()
			cur = &specColumns{}
			last = fm
			labels = append(labels, g.flightModeLabel(fm))
		}
		fn := g.functionLabel(item.Get("Function-Id").Int())

		trim := item.Get("Ph-Trim")
		switch n := g.surfaceServos(fn); n {
		case 2, 3, 4:
			cur.trim.WriteString(";" + slashed(trim, firstN(n)...))
		default:
			cur.trim.WriteString(";" + trim.Index(0).Str())
		}
		cur.dualRate.WriteString(";" + item.Get("DR-Neg").Index(0).Str() + " / " + item.Get("DR-Pos").Index(0).Str())
		cur.expo.WriteString(";" + item.Get("Expo-Neg").Index(0).Str() + " / " + item.Get("Expo-Pos").Index(0).Str())

		sw := g.sw(item.Get("DR-Switch")).WithValue
		if sw.Kind != types.Absent {
			haveSwitch = true
		}
		cur.drSwitch.WriteString(";" + cell(sw))

		label, points := decode.FormatCurve(item.Get("Curve-Type").Int(),
			item.Get("Points-In").Ints(), item.Get("Points-Out").Ints(), g.diag)
		delay := "  -" + format.Tenths(item.Get("Delay-Neg").Int()) +
			" +" + format.Tenths(item.Get("Delay-Pos").Int()) +
			"   " + format.YesNo(item.Get("FM-Delay").Int(), g.diag)
		cur.curve.WriteString(";" + label + delay)
		cur.points.WriteString(";" + points)
	}
	flush()

	g.title("Flight Mode Trim;(Servos)")
	g.row(titles["Trim"].String())
	g.essence(labels, trims)

	g.title("Dual Rate;(values of Position 1)")
	g.row(titles["DR"].String())
	g.essence(labels, rates)

	g.title("Dual Rate switches")
	if haveSwitch {
		g.row(titles["Switch"].String())
		g.essence(labels, drSwitches)
	} else {
		g.row("no switches")
	}

	g.title("Exponential")
	g.row(titles["Expo"].String())
	g.essence(labels, expos)

	g.title("Function Curves;Curve type   -Delay+   FM.Delay")
	g.row(titles["Curve"].String())
	g.essence(labels, crv)
}

// flightModeMixes covers the tail mixer, aileron differential and
// butterfly settings of each flight mode.
func (g *generator) flightModeMixes() {
	modes := g.root.Get("Flight-Modes").Data()
	s := g.t.Surfaces

	if s.TailMix != types.TailMixNone {
		g.title("Flight Modes: " + s.TailMix.String())
		if s.TailMix == types.TailMixVTail {
			g.row("Flight Mode", "Elevator S1 / S2", "Rudder S1 / S2")
		} else {
			g.row("Flight Mode", "Elevator S1 / S2", "Ailerons S1 / S2")
		}
		var labels, values []string
		for _, m := range modes {
			mix := m.Get("VTail-Delta-Ailv")
			labels = append(labels, m.Get("Label").Str())
			values = append(values, ";"+slashed(mix, 0, 1)+";"+slashed(mix, 4, 5))
		}
		g.essence(labels, values)
	}

	ailerons := s.Count(types.Aileron)
	if ailerons < 2 {
		return
	}
	columns := firstN(2)
	if ailerons == 4 {
		columns = firstN(4)
	}
	servoCols := servoColumns(len(columns))

	g.title("Aileron Differential")
	g.row("Flight Mode", "Control", "Adjust", "Up "+servoCols, "Down "+servoCols)
	var labels, values []string
	for _, m := range modes {
		labels = append(labels, m.Get("Label").Str())
		values = append(values, ";"+cell(g.sw(m.Get("ADiffSwitch")).Short)+
			";"+m.Get("ADiffVal").Str()+
			";"+slashed(m.Get("ADiffPos"), columns...)+
			";"+slashed(m.Get("ADiffNeg"), columns...))
	}
	g.essence(labels, values)

	g.butterfly(modes, columns)
}

func servoColumns(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "S" + strconv.Itoa(i+1)
	}
	return strings.Join(parts, " / ")
}

func (g *generator) butterfly(modes []document.Node, aileronCols []int) {
	s := g.t.Surfaces
	flaps := s.Count(types.Flap)
	elevators := s.Count(types.Elevator)

	g.title("Butterfly/Flaps")
	header := []string{"Flight Mode", "Control", "Offset",
		"Ailerons " + servoColumns(len(aileronCols)), "Dif. adjust " + servoColumns(len(aileronCols))}
	if flaps == 2 || flaps == 4 {
		header = append(header, "Flaps "+servoColumns(flaps))
	}
	if elevators == 1 || elevators == 2 {
		header = append(header, "Elevator "+servoColumns(elevators))
	}
	header = append(header, "Elevator Curve", "Tuning Control", "Dif. Adjust", "Ailerons", "Flaps", "Elevator")
	g.row(header...)

	var labels, values []string
	for _, m := range modes {
		mix := m.Get("BrakeMix")
		v := ";" + cell(g.sw(m.Get("BrakeSw")).Short) + ";" + m.Get("BkOffset").Str()
		v += ";" + slashed(mix, aileronCols...) + ";" + slashed(m.Get("BrakeDiff"), aileronCols...)
		if flaps == 2 || flaps == 4 {
			v += ";" + slashed(mix, offset(firstN(flaps), 4)...)
		}
		if elevators == 1 || elevators == 2 {
			v += ";" + slashed(mix, offset(firstN(elevators), 8)...)
		}
		pointsRow := strings.Repeat(";", strings.Count(v, ";"))

		curve := m.Get("BrakeElevCurve")
		label, points := decode.FormatCurve(curve.Get("Curve-Type").Int(),
			curve.Get("Points-In").Ints(), curve.Get("Points-Out").Ints(), g.diag)
		adjust := m.Get("BrakeAdjust")
		v += ";" + label +
			";" + cell(g.sw(m.Get("BkAdjustSwitch")).Short) +
			";" + adjust.Index(3).Str() +
			";" + adjust.Index(0).Str() +
			";" + adjust.Index(1).Str() +
			";" + adjust.Index(2).Str()
		if points != "" {
			v += "\n" + pointsRow + ";" + points
		}
		labels = append(labels, m.Get("Label").Str())
		values = append(values, v)
	}
	g.essence(labels, values)
}

func offset(idx []int, by int) []int {
	for i := range idx {
		idx[i] += by
	}
	return idx
}

func (g *generator) snapRolls() {
	switch g.t.Surfaces.TailMix {
	case types.TailMixVTail, types.TailMixDelta:
		return
	}
	g.title("Snap Rolls:")
	header := false
	for _, item := range g.root.Get("SnapRolls").Items() {
		mode, master := "Single", "-"
		if item.Get("Mode").Int() == 0 {
			mode = "Master"
			sw := g.sw(item.Get("Master-Sw")).WithValue
			if sw.Kind == types.Absent {
				continue
			}
			master = cell(sw)
		}
		cells := []string{g.flightModeLabel(item.Get("Flight-Mode").Int()), mode, master}
		for i := 0; i < 4; i++ {
			cells = append(cells, cell(g.sw(item.Get("Switch").Index(i)).WithValue))
		}
		if !header {
			g.row("Flight Mode", "Mode", "Master Switch", "Sw up/right", "Sw down/right", "Sw up/left", "Sw down/left")
			header = true
		}
		g.row(cells...)
	}
	if !header {
		g.row("no snap rolls")
	}
}

var mixLinks = []string{"no", "+  yes", "-  yes"}

func (g *generator) freeMixes() {
	g.title("Free Mixes: Overview")
	mixes := g.root.Get("Mixes-Main").Data()
	if len(mixes) == 0 {
		g.row("no mixes")
		return
	}
	g.row("From", "To", "Flight Mode", "Throttle Asymmetric Mix")
	for _, m := range mixes {
		from := g.functionLabel(m.IntAt(0))
		effect := "Flight Mode dependent"
		if m.IntAt(2) == 1 {
			effect = "Global"
		}
		asym := "no"
		if s, ok := types.SurfaceOf(from); ok && s == types.Motor {
			asym = format.YesNo(m.IntAt(3), g.diag)
		}
		g.row(from, g.functionLabel(m.IntAt(1)), effect, asym)
	}

	g.title("Free Mixes: Flight Modes;;;;;Delay")
	g.row("Mix", "Flight Mode", "Master Value", "Switch", "Curve", "-Source+    -Switch+",
		"Mix Output +", "Mix Output -", "Single direction", "Master Link", "Slave Link", "Trim", "Slave Dual-Rate")

	values := g.root.Get("Mixes-Values")
	modes := g.t.FlightModes.Len()
	for i, m := range mixes {
		global := m.IntAt(2) == 1
		to := g.functionLabel(m.IntAt(1))
		name := g.functionLabel(m.IntAt(0)) + " to " + to
		for fm := 0; fm < modes; fm++ {
			k := fm*len(mixes) + i
			if k >= values.Len() {
				g.diag.Miss()
				break
			}
			g.mixValues(name, to, values.Index(k), global)
			if global {
				break
			}
		}
	}
}

func (g *generator) mixValues(name, to string, v document.Node, global bool) {
	mode := g.flightModeLabel(v.Get("Flight-Mode").Int())
	if global {
		mode = "Global"
	}
	label, points := decode.FormatCurve(v.Get("Curve-Type").Int(),
		v.Get("Points-In").Ints(), v.Get("Points-Out").Ints(), g.diag)
	delay := format.Tenths(v.Get("DelayN").Int()) + "s  " +
		format.Tenths(v.Get("DelayP").Int()) + "s   " +
		format.Tenths(v.Get("DelaySwN").Int()) + "s  " +
		format.Tenths(v.Get("DelaySwP").Int()) + "s"

	outPos, outNeg := "-", "-"
	if n := g.surfaceServos(to); n >= 2 && n <= 4 {
		outPos = slashed(v.Get("S-Output"), firstN(n)...)
		neg := v.Get("S-OutputN")
		if !neg.Exists() {
			// Transmitter firmware before 3 has no negative outputs.
			outNeg = strings.TrimSuffix(strings.Repeat("0 / ", n), " / ")
		} else {
			outNeg = slashed(neg, firstN(n)...)
		}
	}

	cells := []string{
		name,
		mode,
		v.Get("Intensity").Str(),
		cell(g.sw(v.Get("Switch")).WithValue),
		label,
		delay,
		outPos,
		outNeg,
		format.YesNo(v.Get("Direction").Int(), g.diag),
		format.Pick(mixLinks, v.Get("M-Link").Int(), g.diag),
		format.Pick(mixLinks, v.Get("S-Link").Int(), g.diag),
		format.YesNo(v.Get("M-Trim").Int(), g.diag),
		format.YesNo(v.Get("S-DR").Int(), g.diag),
	}
	g.row(cells...)
	if points != "" {
		g.out.WriteString("\n;;;;" + points)
	}
}
