// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package compare

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oldReport = "jsnview;version dev\n\nServo Assignment:\n1;Aileron\n2;Flap\n\n\nTimers:\n1;Motor\n"

func TestReports_Identical(t *testing.T) {
	res := Reports(oldReport, oldReport, Options{})
	assert.False(t, res.Changed())
	assert.Equal(t, 1.0, res.Similarity)

	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf))
	assert.Empty(t, buf.String())
}

func TestReports_ChangedLineIsGroupedBySection(t *testing.T) {
	newReport := "jsnview;version dev\n\nServo Assignment:\n1;Aileron\n2;Flaps\n\n\nTimers:\n1;Motor\n"

	res := Reports(oldReport, newReport, Options{})
	require.True(t, res.Changed())
	ins, del := res.Counts()
	assert.Equal(t, 1, ins)
	assert.Equal(t, 1, del)
	assert.Less(t, res.Similarity, 1.0)

	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf))
	assert.Equal(t, "@@ Servo Assignment:\n- 2;Flap\n+ 2;Flaps\n", buf.String())
}

func TestReports_Context(t *testing.T) {
	newReport := "jsnview;version dev\n\nServo Assignment:\n1;Aileron\n2;Flaps\n\n\nTimers:\n1;Motor\n"

	res := Reports(oldReport, newReport, Options{Context: 1})
	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf))
	assert.Equal(t, "@@ Servo Assignment:\n  1;Aileron\n- 2;Flap\n+ 2;Flaps\n  \n", buf.String())
}

func TestReports_IgnoreSpace(t *testing.T) {
	a := "Timers:\n1;Motor  (T01)\n"
	b := "Timers:\n1;Motor (T01)\n"

	assert.True(t, Reports(a, b, Options{}).Changed())
	assert.False(t, Reports(a, b, Options{IgnoreSpace: true}).Changed())
}

func TestReports_Empty(t *testing.T) {
	res := Reports("", "", Options{})
	assert.False(t, res.Changed())
	assert.Equal(t, 1.0, res.Similarity)
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a  b", "a b"},
		{"a\t\t b", "a b"},
		{"ab", "ab"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, collapseSpaces(tt.in), "input %q", tt.in)
	}
}
