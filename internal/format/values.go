// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/pkg/types"
)

// Full deflection of a control as stored by the transmitter.
const fullScale = 4000

// ScaleDecimal divides value by 10^shift. The transmitter stores integers
// only and carries the decimal precision of each measurement separately.
// A shift of zero or less returns value unchanged.
func ScaleDecimal(shift int, value int64) float64 {
	if shift <= 0 {
		return float64(value)
	}
	return float64(value) / math.Pow10(shift)
}

// Decimal formats value scaled by shift. Unscaled values print as plain
// integers; scaled values always carry at least one decimal digit.
func Decimal(shift int, value int64) string {
	if shift <= 0 {
		return strconv.FormatInt(value, 10)
	}
	return Float(ScaleDecimal(shift, value))
}

// Float formats v with the shortest representation that round-trips,
// keeping at least one decimal digit ("2.0", "0.25").
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Tenths formats a value stored in tenths of a second, e.g. delays.
func Tenths(value int64) string {
	return Decimal(1, value)
}

// Percent maps a raw control value in [-4000, 4000] to a percentage,
// rounding halves to even.
func Percent(value int64) int {
	return int(math.RoundToEven(100 * float64(value) / fullScale))
}

// Duration formats a signed duration given in milliseconds as ±H:MM:SS.
// Milliseconds are truncated.
func Duration(ms int64) string {
	sign := "+"
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	return sign + Clock(ms/1000)
}

// Clock formats a non-negative number of seconds as H:MM:SS.
func Clock(seconds int64) string {
	if seconds < 0 {
		seconds = -seconds
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// DeviceID reconstructs a Jeti device id from its packed form. The id is
// two 16-bit fields stored as high*65536+low in a signed 32-bit integer,
// so ids with high >= 32768 wrap into negative space. The result is
// formatted "low:high"; zero means no device.
func DeviceID(raw int64) types.Label {
	if raw == 0 {
		return types.AbsentLabel
	}
	v := raw
	var wrap int64
	if raw < 0 {
		v = 1<<31 + raw
		wrap = 1 << 15
	}
	high := v / 65536
	low := v - high*65536
	return types.Resolve(fmt.Sprintf("%d:%d", low, high+wrap))
}

// YesNo translates a 0/1 flag. Any other value is recorded as a miss.
func YesNo(flag int64, d *Diagnostics) string {
	switch flag {
	case 0:
		return "no"
	case 1:
		return "yes"
	default:
		return d.Miss()
	}
}

// Pick returns table[i], recording a miss when i is out of range or the
// entry is the unknown marker.
func Pick(table []string, i int64, d *Diagnostics) string {
	if i < 0 || i >= int64(len(table)) || table[i] == UnknownMarker {
		return d.Miss()
	}
	return table[i]
}
