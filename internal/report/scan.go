// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"regexp"
	"sort"
	"strings"

	"github.com/petar-djukic/jsnview/internal/decode"
)

// referencePattern matches a quoted reference anywhere in the raw file.
var referencePattern = regexp.MustCompile(`"([-+]?\d+,){7}[-+]?\d+"`)

// sortKey orders P10 after P9.
func sortKey(name string) string {
	if name == "P10" {
		return "Q10"
	}
	return name
}

// assignedControls lists every physical control referenced anywhere in the
// document. References were already decoded by their sections, so misses
// are not counted again.
func (g *generator) assignedControls() {
	g.out.WriteString("\n\n\nassigned controls and switches:")

	physical := make(map[string]bool)
	for _, name := range decode.PhysicalControls() {
		physical[name] = true
	}
	dec := decode.NewDecoder(decoderTables(g.t, g.dec.Orientation()), nil)

	seen := make(map[string]bool)
	for _, m := range referencePattern.FindAllString(g.raw, -1) {
		sw := dec.Switch(strings.Trim(m, `"`))
		if !sw.Short.OK() || !physical[sw.Short.Text] {
			continue
		}
		seen[sw.Short.Text] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortKey(names[i]) < sortKey(names[j]) })
	for _, name := range names {
		g.row(name)
	}
}
