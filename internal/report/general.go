// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/petar-djukic/jsnview/internal/decode"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/internal/symbols"
	"github.com/petar-djukic/jsnview/pkg/types"
)

var modelTypes = []string{"Aero", "Heli", "General", "X-Copter"}

func (g *generator) global() {
	g.title("Global Settings:")
	global := g.root.Get("Global")
	hasTxVersion := false

	for _, key := range global.Keys() {
		v := global.Get(key)
		switch key {
		case "Version":
			tx := g.t.Transmitter
			if tx.Code == 1 {
				// Firmware before 5 stores no transmitter type.
				continue
			}
			if tx.Known() {
				g.row("Transmitter type", tx.Name)
			} else {
				g.row("Transmitter type", itoa(tx.Code), "is unknown", g.diag.Miss())
			}
		case "TxVers":
			hasTxVersion = true
			g.row("Transmitter version", v.Str())
		case "Filename":
			g.row("Filename", v.Str())
		case "Model-Type":
			g.row("Model type", format.Pick(modelTypes, v.Int()-1, g.diag))
		case "Receiver-ID1", "Receiver-ID2", "Rx-ID900", "txID":
			g.row(key, cell(format.DeviceID(v.Int())))
		case "Rx-900":
			g.row("900Mhz backup", format.YesNo(v.Int(), g.diag))
		case "Rx-900Sw":
			g.row(key, cell(g.sw(v).WithValue))
		case "Type":
		default:
			g.row(key, v.Str())
		}
	}
	if !hasTxVersion {
		g.row("Transmitter Version", "< 3")
	}
}

func (g *generator) typeSpecific() {
	g.title("Basic Properties")
	ts := g.root.Get("Type-Specific")
	if ts.Has("Model-Type") {
		if ts.Get("Model-Type").Str() != "Aero" {
			g.dump(ts)
			return
		}
	} else {
		g.row(g.diag.Miss())
	}

	for _, key := range ts.Keys() {
		v := ts.Get(key)
		switch key {
		case "Wing-Type":
			// Unknown codes were counted when the surfaces were built.
			g.row("Wing type", format.Pick(symbols.WingTypes, v.Int(), nil))
		case "Tail-Type":
			g.row("Tail type", format.Pick(symbols.TailTypes, v.Int(), nil))
		case "Motor-Count":
			g.row("Engine count", v.Str())
		case "Gear-Servos":
			g.row("Gear servos", v.Str())
		case "Airbrake-Servos":
			g.row("Airbrake servos", v.Str())
		case "Gyro1", "Gyro2", "Gyro3":
			on := "no"
			if v.Int() == 1 {
				on = "yes"
			}
			g.row(key, on)
		}
	}
}

var colorProfiles = []string{
	"Black&White", "Light Red", "Light Green", "Light Blue", "Light Yellow",
	"Light Violet", "Light Pink", "Blue&Orange", "Warm Red", "Dark Red",
	"Dark Indigo", "Dark Green", "Light Orange",
}

func (g *generator) common() {
	c := g.root.Get("Common")

	imageTitle := false
	startImage := func() {
		if !imageTitle {
			g.title("Model Image & Colors")
			imageTitle = true
		}
	}
	if c.Has("ColorP") {
		i := c.Get("ColorP").Int()
		color := "??"
		if i >= 0 && i < int64(len(colorProfiles)) {
			color = colorProfiles[i]
		} else {
			g.diag.Miss()
		}
		startImage()
		g.row("Color profile", color)
	}
	if img := c.Get("Img").Str(); img != "" {
		startImage()
		g.row("Model image", img)
	}
	if bg := c.Get("ImgBgPth").Str(); bg != "" {
		startImage()
		g.row("Background image", bg)
	}

	g.title("Other Model Options:")
	options := []struct{ key, label string }{
		{"Autotrim-Switch", "Auto-Trim switch"},
		{"Trainer-Switch", "Trainer switch"},
		{"Logging-Switch", "Start-Logging switch"},
		{"Throtle-Cut-Switch", "Throttle-Cut switch"},
		{"Throtle-Idle-Switch", "Throttle-Idle switch"},
	}
	for _, o := range options {
		sw := g.sw(c.Get(o.key)).WithValue
		switch {
		case sw.Kind != types.Absent:
			g.row(o.label, cell(sw))
		case o.key == "Logging-Switch":
			g.row(o.label, "Auto")
		}
	}

	if c.Has("24ch") {
		g.title("Wireless Modes/Trainer:")
		g.row("24-Channels Multimode active", format.YesNo(c.Get("24ch").Int(), g.diag))
	}
	if c.Has("Alrm-Enable-Morse") {
		g.title("Morse Code Alarms enabled;" + format.YesNo(c.Get("Alrm-Enable-Morse").Int(), g.diag))
	}
	if sw := g.sw(c.Get("RC-Switch").Index(0)).WithValue; sw.Kind != types.Absent {
		g.title("RC-Switch;" + cell(sw))
	}

	g.title("Logging transmitter status info:")
	g.row("Log alarms", format.YesNo(c.Get("Log-Alms").Int(), g.diag))
	logged := []string{"Log input controls"}
	for _, item := range c.Get("Save-Ctrl").Items() {
		if sw := g.sw(item).Short; sw.Kind != types.Absent {
			logged = append(logged, cell(sw))
		}
	}
	if len(logged) == 1 {
		logged = append(logged, "none")
	}
	g.row(logged...)

	mainScreen := false
	pages := []struct{ key, label string }{
		{"Mnu-lft", "Switch to previous page"},
		{"Mnu-rgt", "Switch to following page"},
	}
	for _, p := range pages {
		sw := g.sw(c.Get(p.key)).WithValue
		if sw.Kind == types.Absent {
			continue
		}
		if !mainScreen {
			g.title("Main Screen:")
			mainScreen = true
		}
		g.row(p.label, cell(sw))
	}
}

var (
	preFlightPositions = []string{"", "Bottom/Off", "Top/On", "Center"}
	arrowsNormal       = []string{"", "  ↓", "  ↑", "  —"}
	arrowsReversed     = []string{"", "  ↑", "  ↓", "  —"}
)

// controls lists the pre-flight positions and switch points of the
// physical controls.
func (g *generator) controls() {
	g.title("Sticks/Switches Setup:")
	g.row("Stick/Switch", "Required pre-fl. pos.", "compensated with settings", "Switch On", "Switch Off")

	for _, item := range g.root.Get("Controls").Data() {
		pos := item.Get("Req-Pos").Int()
		if pos < 0 || pos >= int64(len(preFlightPositions)) {
			g.diag.Miss()
			return
		}
		name, ok := decode.ControlName(item.Get("ID").Int())
		if !ok {
			g.diag.Miss()
			continue
		}
		if decode.IsProportionalControl(name) {
			g.row(name, preFlightPositions[pos], "", pct(item.Get("Sw-On").Int()), pct(item.Get("Sw-Off").Int()), "")
			continue
		}
		if pos == 0 {
			continue
		}
		arrows := arrowsNormal
		if !g.orientationNormal(name) {
			arrows = arrowsReversed
		}
		g.row(name, preFlightPositions[pos], arrows[pos])
	}
}

func (g *generator) orientationNormal(name string) bool {
	return g.dec.Orientation().Normal(name)
}

func (g *generator) ctrlSound() {
	if !g.root.Has("CtrlSound") {
		return
	}
	g.title("Proportional Controls;Sound")
	empty := true
	for _, item := range g.root.Get("CtrlSound").Data() {
		sw := g.sw(item.Index(0)).Short
		mode := item.IntAt(1)
		if sw.Kind == types.Absent || mode <= 0 {
			continue
		}
		sound := "Voice"
		if mode == 1 {
			sound = "Center"
		}
		g.row(cell(sw), sound)
		empty = false
	}
	if empty {
		g.row("no sounds")
	}
}
