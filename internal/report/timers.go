// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/internal/decode"
	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

var (
	timerResets  = []string{"None", "Short reset", "All"}
	timerTypes   = []string{"Standard", "Free-Running", "Laps"}
	timerReports = []string{"None", "Beep 1", "Beep 2", "Voice", "Voice (Up)"}
)

func (g *generator) timers() {
	g.title("Timers:")
	c := g.root.Get("Common")
	if c.Has("Model-Time2") {
		// Model-Time2 is stored in seconds.
		total := strings.TrimPrefix(format.Duration(c.Get("Model-Time2").Int()*1000), "+")
		g.row("Model Time", total)
		g.row("Timers reset", "(at power up):", format.Pick(timerResets, c.Get("Time-Reset").Int(), g.diag))
	}

	timers := g.root.Get("Timers").Data()
	if len(timers) == 0 {
		g.row("no timers")
		return
	}
	g.row("Timer Number", "Label", "Initial value", "Target value", "Timer type", "Report type", "Switch", "Reset switch")
	for i, item := range timers {
		reset := "-"
		if item.Has("Sw-Rst") {
			reset = cell(g.sw(item.Get("Sw-Rst")).WithValue)
		}
		g.row(
			strconv.Itoa(i+1),
			item.Get("Label").Str(),
			format.Duration(item.Get("Init-Time").Int()),
			format.Duration(item.Get("Dest-Time").Int()),
			format.Pick(timerTypes, item.Get("Tim-Type").Int(), g.diag),
			format.Pick(timerReports, item.Get("Report-Type").Int(), g.diag),
			cell(g.sw(item.Get("Switch")).WithValue),
			reset,
		)
	}
}

var (
	logicTypes = []string{"...", "AND", "OR", "Multi", "XOR", "A▲B▼", "A>B", "A<B", "A=B"}
	conditions = []string{"x<", "x>", "Lin", "|x|<", "|x|>", "|x|=", "x~"}
)

const linearCondition = 2

func (g *generator) logicalSwitches() {
	g.title("Logical Switches:")
	items := g.root.Get("LogSwitch").Data()

	// Trailing switches still at their defaults are not listed.
	last := int64(-1)
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Get("Enabled").Int() != 0 || it.Get("Label").Str() != "" ||
			decode.Assigned(it.Get("Switch1").Str()) || decode.Assigned(it.Get("Switch2").Str()) ||
			it.Get("Log-Type").Int() != 0 {
			last = int64(i)
			break
		}
	}
	if last < 0 {
		g.row("no switches")
		return
	}

	g.row("Number", "Label", "Enabled", "Control1", "Specification1", "Control2", "Specification2", "Condition", "Delay")
	for _, it := range items {
		idx := it.Get("Index").Int()
		if idx > last {
			return
		}
		sw1, spec1 := g.logicOperand(it.Get("Switch1").Str(), it.Get("Cond1").Int(), it.Get("Value1").Int())
		sw2, spec2 := g.logicOperand(it.Get("Switch2").Str(), it.Get("Cond2").Int(), it.Get("Value2").Int())

		delay := `/  0.0s   \  0.0s`
		if it.Has("Up-Type") {
			up, down := "/", `\`
			if it.Get("Up-Type").Int() == 1 {
				up = "|"
			}
			if it.Get("Dn-Type").Int() == 1 {
				down = "|"
			}
			delay = up + "  " + format.Tenths(it.Get("Up-Time").Int()) + "s   " +
				down + "  " + format.Tenths(it.Get("Dn-Time").Int()) + "s"
		}
		g.row(
			"Log"+itoa(idx+1),
			it.Get("Label").Str(),
			format.YesNo(it.Get("Enabled").Int(), g.diag),
			sw1, spec1, sw2, spec2,
			format.Pick(logicTypes, it.Get("Log-Type").Int(), g.diag),
			delay,
		)
	}
}

// logicOperand renders one input of a logical switch. Proportional inputs
// show the comparison; the others show the switch direction.
func (g *generator) logicOperand(ref string, cond, value int64) (control, spec string) {
	sw := g.dec.Switch(ref)
	if cond < 0 || cond >= int64(len(conditions)) {
		return cell(sw.Short), g.diag.Miss()
	}
	if !sw.Proportional {
		return cell(sw.WithValue), ""
	}
	if cond == linearCondition {
		return cell(sw.Short), conditions[cond]
	}
	return cell(sw.Short), conditions[cond] + " " + pct(value)
}

func (g *generator) eventSounds() {
	g.title("Sounds on Event")
	events := g.root.Get("Event-Sounds").Data()
	if len(events) == 0 {
		g.row("no event")
		return
	}
	g.row("Switch", "File", "Repeat")
	for _, e := range events {
		g.row(cell(g.sw(e.Get("Switch")).WithValue), e.Get("File").Str(), format.YesNo(e.Get("Repeat").Int(), g.diag))
	}
}

func (g *generator) voice() {
	g.title("Voice Output:")
	v := g.root.Get("Voice")
	written := false

	if sw := g.sw(v.Get("TimerSw")).WithValue; sw.Kind != types.Absent {
		g.row("Timer", g.timerLabel(v.Get("Timer-ID").Int()), "Switch", cell(sw))
		written = true
	}
	g.row("Telemetry")
	if sw := g.sw(v.Get("RepeatSw")).WithValue; sw.Kind != types.Absent {
		g.row("Repeat every", v.Get("Timeout").Str()+"sec", "Switch", cell(sw))
		written = true
	}
	if sw := g.sw(v.Get("TrigSw")).WithValue; sw.Kind != types.Absent {
		g.row("Trigger Switch", cell(sw))
		written = true
	}
	if !written {
		g.row("no voice output")
	}
}

// timerLabel returns the label of timer id, Missing when it was deleted.
func (g *generator) timerLabel(id int64) string {
	if label, _, ok := g.t.Timers.Lookup(id); ok {
		return label
	}
	return cell(types.MissingLabel)
}
