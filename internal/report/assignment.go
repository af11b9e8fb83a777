// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

func (g *generator) functions() {
	g.title("Functions Assignment:")
	g.row("Number", "Function", "Control", "Trim", "Trim max")
	for i, item := range g.root.Get("Functions").Data() {
		cells := []string{
			strconv.Itoa(i + 1),
			item.Get("Label").Str(),
			cell(g.sw(item.Get("Control")).Short),
		}
		if trim := g.sw(item.Get("Trim-Control")).Short; trim.Kind != types.Absent {
			cells = append(cells, cell(trim), item.Get("Trim-Max").Str())
		}
		g.row(cells...)
	}
}

func (g *generator) servos() {
	g.title("Servo Assignment:")
	g.row("Slot", "Servo", "Subtrim", "Max positive", "Max negative", "Max positive limit",
		"Max negative limit", "Reverse", "Delay positive/negative", "Servo balancer")
	for _, item := range g.root.Get("Servos").Data() {
		slot := item.Get("Index").Int() + 1
		name := g.t.Servos.Slot(slot)
		if name.Kind == types.Absent {
			continue
		}
		delay := format.Tenths(item.Get("Delay-Positive").Int()) + "s   " +
			format.Tenths(item.Get("Delay-Negative").Int()) + "s"
		g.row(
			itoa(slot),
			cell(name),
			item.Get("Middle").Str(),
			item.Get("Max-Positive").Str(),
			item.Get("Max-Negative").Str(),
			item.Get("Max-Positive-Limit").Str(),
			item.Get("Max-Negative-Limit").Str(),
			format.YesNo(item.Get("Servo-Reverse").Int(), g.diag),
			delay,
			balancer(item.Get("Curve").Ints()),
		)
	}
}

// balancer reports whether a servo balancer curve has any non-zero point.
func balancer(curve []int64) string {
	for _, v := range curve {
		if v != 0 {
			return "yes"
		}
	}
	return "no"
}

func (g *generator) sequencer() {
	g.title("Sequencer:")
	header := false
	for _, item := range g.root.Get("Sequence").Items() {
		sw := g.sw(item.Get("Switch")).WithValue
		label := item.Get("Label").Str()
		slot := item.Get("Override").Int()

		servo := "-"
		if slot > 0 {
			servo = cell(g.t.Servos.Slot(slot))
		}
		if sw.Kind == types.Absent && label == "" && slot <= 0 {
			continue
		}

		path := "symmetrical"
		if format.YesNo(item.Get("Asymm").Int(), g.diag) == "yes" {
			path = "asymmetrical"
		}
		if !header {
			g.row("Number", "Label", "Switch", "Overwrite channel", "Type of path", "Cycling", "Always finish sequence")
			header = true
		}
		g.row(
			"Q"+item.Get("ID").Str(),
			label,
			cell(sw),
			servo,
			path,
			format.YesNo(item.Get("Cycle").Int(), g.diag),
			format.YesNo(item.Get("Finish").Int(), g.diag),
		)
	}
	if !header {
		g.row("no sequencer")
	}
}
