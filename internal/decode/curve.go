// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package decode

import (
	"strconv"
	"strings"

	"github.com/petar-djukic/jsnview/internal/format"
	"github.com/petar-djukic/jsnview/pkg/types"
)

const constantCurve = 1

var curveNames = []string{
	"Standard", "Constant", "x>0", "x<0", "|x|", "+positive", "-negative",
	"±symmetric", "3-point", "5-point", "7-point", "9-point", "Gyro",
}

// CurveType is a decoded curve code.
type CurveType struct {
	Label     types.Label
	HasPoints bool // N-point curve with explicit in/out points
	Constant  bool // Single output value taken from the first out point
}

// Curve decodes a curve code. Unknown codes are Unresolved and counted.
func Curve(code int64, d *format.Diagnostics) CurveType {
	if code < 0 || code >= int64(len(curveNames)) {
		d.Miss()
		return CurveType{Label: types.UnresolvedLabel}
	}
	return CurveType{
		Label:     types.Resolve(curveNames[code]),
		HasPoints: code >= 8 && code <= 11,
		Constant:  code == constantCurve,
	}
}

// FormatCurve returns the report label of a curve and, for N-point
// curves, its points as "in|out" pairs separated by two spaces.
func FormatCurve(code int64, pointsIn, pointsOut []int64, d *format.Diagnostics) (label, points string) {
	c := Curve(code, d)
	label = c.Label.Or(format.UnknownMarker)
	if c.Constant && len(pointsOut) > 0 {
		label += "=" + strconv.FormatInt(pointsOut[0], 10)
	}
	if !c.HasPoints {
		return label, ""
	}
	n := len(pointsIn)
	if len(pointsOut) < n {
		n = len(pointsOut)
	}
	pairs := make([]string, n)
	for i := 0; i < n; i++ {
		pairs[i] = strconv.FormatInt(pointsIn[i], 10) + "|" + strconv.FormatInt(pointsOut[i], 10)
	}
	return label, strings.Join(pairs, "  ")
}
