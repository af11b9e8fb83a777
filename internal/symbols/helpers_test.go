// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"sort"
	"strings"
	"testing"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/stretchr/testify/require"
)

// buildDoc assembles a model document from raw JSON sections, filling in
// empty required records.
func buildDoc(t *testing.T, sections map[string]string) *document.Document {
	t.Helper()
	all := map[string]string{
		"Global":        `{}`,
		"Type-Specific": `{}`,
		"Common":        `{}`,
		"Functions":     `{"Data":[]}`,
		"Servos":        `{"Data":[]}`,
		"Flight-Modes":  `{"Data":[]}`,
		"Timers":        `{"Data":[]}`,
	}
	for k, v := range sections {
		all[k] = v
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = `"` + k + `":` + all[k]
	}
	doc, err := document.Parse([]byte("{" + strings.Join(parts, ",") + "}"))
	require.NoError(t, err)
	return doc
}
