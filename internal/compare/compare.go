// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package compare diffs two rendered reports line by line.
package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a line change.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Change is one report line with its diff operation. Section is the title
// of the report section the line belongs to.
type Change struct {
	Op      Op
	Line    string
	Section string
}

// Options controls comparison.
type Options struct {
	IgnoreSpace bool // Collapse runs of spaces and tabs before comparing
	Context     int  // Unchanged lines shown around each change
}

// Result holds the line changes between two reports.
type Result struct {
	Changes    []Change
	Similarity float64 // 1.0 for identical reports
	context    int
}

// Changed reports whether any line differs.
func (r *Result) Changed() bool {
	for _, c := range r.Changes {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

// Counts returns the number of inserted and deleted lines.
func (r *Result) Counts() (inserted, deleted int) {
	for _, c := range r.Changes {
		switch c.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return inserted, deleted
}

// Reports compares report a (old) with report b (new).
func Reports(a, b string, opts Options) *Result {
	if opts.IgnoreSpace {
		a, b = normalizeWhitespace(a), normalizeWhitespace(b)
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	res := &Result{Similarity: similarity(dmp, diffs, len(a), len(b)), context: opts.Context}
	var section string
	prevBlank := false
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		}
		for _, line := range splitLines(d.Text) {
			// A section title follows a blank line.
			if prevBlank && line != "" && op != Delete {
				section = line
			}
			prevBlank = line == ""
			res.Changes = append(res.Changes, Change{Op: op, Line: line, Section: section})
		}
	}
	return res
}

// Write prints the changed lines with their context, grouped under the
// title of the section they belong to.
func (r *Result) Write(w io.Writer) error {
	shown := r.visible()
	current := "\x00"
	for i, c := range r.Changes {
		if !shown[i] {
			continue
		}
		if c.Section != current {
			current = c.Section
			if _, err := fmt.Fprintf(w, "@@ %s\n", current); err != nil {
				return err
			}
		}
		mark := " "
		switch c.Op {
		case Insert:
			mark = "+"
		case Delete:
			mark = "-"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, c.Line); err != nil {
			return err
		}
	}
	return nil
}

// visible marks the changed lines and the unchanged lines within the
// context distance of one.
func (r *Result) visible() []bool {
	shown := make([]bool, len(r.Changes))
	for i, c := range r.Changes {
		if c.Op == Equal {
			continue
		}
		lo, hi := max(0, i-r.context), min(len(r.Changes)-1, i+r.context)
		for j := lo; j <= hi; j++ {
			shown[j] = true
		}
	}
	return shown
}

// similarity is the Levenshtein ratio of the two texts.
func similarity(dmp *diffmatchpatch.DiffMatchPatch, diffs []diffmatchpatch.Diff, la, lb int) float64 {
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(dmp.DiffLevenshtein(diffs))/float64(maxLen)
}

// splitLines splits a diff chunk into lines, dropping the empty element
// after a terminal newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = collapseSpaces(strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// collapseSpaces replaces runs of spaces and tabs with a single space.
func collapseSpaces(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
		} else {
			b.WriteRune(r)
			inSpace = false
		}
	}
	return b.String()
}
