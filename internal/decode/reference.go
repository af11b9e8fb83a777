// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package decode turns the transmitter's packed control references and
// curve codes into report labels. Resolution reads the symbol tables of
// the current document through an explicit Decoder; decode misses never
// fail, they yield Unresolved labels and are counted.
package decode

import (
	"fmt"
	"strconv"
	"strings"
)

// ReferenceFields is the number of integer fields in a reference.
const ReferenceFields = 8

// Reference is a parsed control reference such as "12,0,0,1,1,-4000,-1,4".
type Reference [ReferenceFields]int64

// Primary is the first-position control index. Zero selects the
// seventh-position tables.
func (r Reference) Primary() int64 { return r[0] }

// Inverted is 1 when the control acts inverted.
func (r Reference) Inverted() int64 { return r[1] }

// Proportional is 1 when the control is used proportionally.
func (r Reference) Proportional() int64 { return r[2] }

// Reserved is stored by the transmitter with unknown meaning.
func (r Reference) Reserved() int64 { return r[3] }

// Centered is 1 when the control is centered.
func (r Reference) Centered() int64 { return r[4] }

// Value is the activation point in [-4000, 4000].
func (r Reference) Value() int64 { return r[5] }

// Secondary is the seventh-position index or an override code.
func (r Reference) Secondary() int64 { return r[6] }

// Interval is -1 when the control switches over an interval.
func (r Reference) Interval() int64 { return r[7] }

// String returns the reference in its stored form.
func (r Reference) String() string {
	parts := make([]string, ReferenceFields)
	for i, v := range r {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

// ShapeError reports a string that is not a well-formed reference.
type ShapeError struct {
	Input  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed reference %q: %s", e.Input, e.Reason)
}

// ParseReference parses exactly eight comma-separated integers. Each field
// may carry a leading sign; nothing else is accepted.
func ParseReference(s string) (Reference, error) {
	var r Reference
	fields := strings.Split(s, ",")
	if len(fields) != ReferenceFields {
		return r, &ShapeError{Input: s, Reason: fmt.Sprintf("want %d fields, got %d", ReferenceFields, len(fields))}
	}
	for i, f := range fields {
		if !isSignedDigits(f) {
			return r, &ShapeError{Input: s, Reason: fmt.Sprintf("field %d is not an integer", i+1)}
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return r, &ShapeError{Input: s, Reason: fmt.Sprintf("field %d: %v", i+1, err)}
		}
		r[i] = v
	}
	return r, nil
}

func isSignedDigits(f string) bool {
	if f != "" && (f[0] == '-' || f[0] == '+') {
		f = f[1:]
	}
	if f == "" {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}
	return true
}
