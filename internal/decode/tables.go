// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"github.com/petar-djukic/jsnview/internal/format"
)

// Override codes in the secondary field. They take precedence over the
// primary field's table and index a symbol table directly.
const (
	OverrideTimer      = 76
	OverrideFunction   = 77
	OverrideServo      = 78
	OverrideFlightMode = 79
)

const unk = format.UnknownMarker

// firstPosition names the physical controls. P3 and P4 are swapped because
// the transmitter numbers them that way.
var firstPosition = []string{
	"nix", "P1", "P2", "P4", "P3", "P5", "P6", "P7", "P8", "SA", "SB",
	"SC", "SD", "SE", "SF", "SG", "SH", "SI", "SJ", "SK", "SL", "P9",
	"P10", "SM", "SN", "SO", "SP",
}

// genuineSwitches are the switches whose default orientation is a
// transmitter setting.
var genuineSwitches = []string{
	"SA", "SB", "SC", "SD", "SE", "SF", "SG", "SH",
	"SI", "SJ", "SK", "SL", "SM", "SN", "SO", "SP",
}

var (
	logicalSwitches = []string{ // 0..31
		"Log1", "Log2", "Log3", "Log4", "Log5", "Log6", "Log7", "Log8",
		"Log9", "Log10", "Log11", "Log12", "Log13", "Log14", "Log15", "Log16",
		"Log17", "Log18", "Log19", "Log20", "Log21", "Log22", "Log23", "Log24",
		unk, unk, unk, unk, unk, unk, unk, unk,
	}
	voiceCommands = []string{ // 32..47
		"V01", "V02", "V03", "V04", "V05", "V06", "V07", "V08",
		"V09", "V10", "V11", "V12", "V13", "V14", "V15", unk,
	}
	telemetryControls = []string{ // 48..63
		"MX1", "MX2", "MX3", "MX4", "MX5", "MX6", "MX7", "MX8",
		"MX9", "MX10", "MX11", "MX12", "MX13", "MX14", "MX15", "MX16",
	}
	accelerometer = []string{ // 64..79, the last four are override codes
		"GX", "GY", "GZ", "G/L", "G/R", "GXL", "GXR", "GHi",
		unk, unk, unk, unk, "timer", "function", "servo", "flight mode",
	}
	sequencers = []string{ // 80..89
		"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10",
	}
	others = []string{ // 90..129: receiver channels, digital trims, Lua apps
		"CH1", "CH2", "CH3", "CH4", "CH5", "CH6", "CH7", "CH8",
		unk, unk, unk, unk, unk, unk, unk, unk,
		"Tr1", "Tr2", "Tr3", "Tr4", "Tr5", "Tr6", unk, unk, unk, unk,
		"C01", "C02", "C03", "C04", "C05", "C06", "C07", "C08", "C09", "C10",
		unk, "Log.MAX", unk, unk,
	}
)

var seventhPosition = concat(logicalSwitches, voiceCommands, telemetryControls,
	accelerometer, sequencers, others)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// ControlName returns the first-position name of a physical control.
// Index 0 is not a control.
func ControlName(i int64) (string, bool) {
	if i < 1 || i >= int64(len(firstPosition)) {
		return "", false
	}
	return firstPosition[i], true
}

// IsProportionalControl reports whether name is a stick or slider (P*).
func IsProportionalControl(name string) bool {
	return len(name) > 1 && name[0] == 'P'
}

// IsGenuineSwitch reports whether name is one of the switches SA..SP.
func IsGenuineSwitch(name string) bool {
	for _, s := range genuineSwitches {
		if s == name {
			return true
		}
	}
	return false
}

// GenuineSwitches returns the names of the switches SA..SP.
func GenuineSwitches() []string {
	out := make([]string, len(genuineSwitches))
	copy(out, genuineSwitches)
	return out
}

// PhysicalControls returns the names of the controls that exist as
// hardware on the transmitter: sticks, sliders, switches, the
// accelerometer axes and the digital trims.
func PhysicalControls() []string {
	out := make([]string, 0, len(firstPosition)+len(accelerometer)+6)
	out = append(out, firstPosition[1:]...)
	out = append(out, accelerometer[:8]...)
	return append(out, others[16:22]...)
}
