// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"github.com/petar-djukic/jsnview/internal/document"
)

// Lua lists the app ids of the installed Lua apps, 1-based.
type Lua struct {
	apps []int64
}

// BuildLua reads the optional Lua record.
func BuildLua(doc *document.Document) *Lua {
	l := &Lua{}
	for _, item := range doc.Root.Get("Lua").Items() {
		l.apps = append(l.apps, item.Get("appID").Int())
	}
	return l
}

// Len returns the number of apps.
func (l *Lua) Len() int {
	return len(l.apps)
}

// App returns the app id at 1-based position i.
func (l *Lua) App(i int) (int64, bool) {
	if i < 1 || i > len(l.apps) {
		return 0, false
	}
	return l.apps[i-1], true
}

// Contains reports whether an app with the given id is installed.
func (l *Lua) Contains(id int64) bool {
	for _, a := range l.apps {
		if a == id {
			return true
		}
	}
	return false
}
