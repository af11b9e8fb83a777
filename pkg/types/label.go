// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared value types used across jsnview packages.
package types

// LabelKind identifies how a reference or table lookup was resolved.
type LabelKind int

const (
	Absent     LabelKind = iota // Nothing assigned
	Resolved                    // Label found
	Missing                     // Well-formed reference to an entry that is not defined
	Unresolved                  // Decode miss; counted as unknown data
)

// String returns the human-readable name of the label kind.
func (k LabelKind) String() string {
	switch k {
	case Absent:
		return "Absent"
	case Resolved:
		return "Resolved"
	case Missing:
		return "Missing"
	case Unresolved:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// Label is the result of resolving a reference. Text is only meaningful
// when Kind is Resolved.
type Label struct {
	Kind LabelKind
	Text string
}

// Resolve returns a resolved label carrying text.
func Resolve(text string) Label {
	return Label{Kind: Resolved, Text: text}
}

// Sentinel labels for the non-resolved kinds.
var (
	AbsentLabel     = Label{Kind: Absent}
	MissingLabel    = Label{Kind: Missing}
	UnresolvedLabel = Label{Kind: Unresolved}
)

// OK reports whether the label was resolved.
func (l Label) OK() bool {
	return l.Kind == Resolved
}

// Or returns the label text when resolved and fallback otherwise.
func (l Label) Or(fallback string) string {
	if l.Kind == Resolved {
		return l.Text
	}
	return fallback
}
