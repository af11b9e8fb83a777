// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		label Label
		ok    bool
		or    string
	}{
		{"resolved", Resolve("SA"), true, "SA"},
		{"absent", AbsentLabel, false, "-"},
		{"missing", MissingLabel, false, "-"},
		{"unresolved", UnresolvedLabel, false, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.label.OK())
			assert.Equal(t, tt.or, tt.label.Or("-"))
		})
	}
	assert.Equal(t, "Unresolved", Unresolved.String())
	assert.Equal(t, "Unknown", LabelKind(9).String())
}

func TestSurfaces(t *testing.T) {
	var s Surfaces
	s.Servos[Aileron] = 2
	s.Servos[Flap] = 4

	assert.Equal(t, 2, s.Count(Aileron))
	assert.Equal(t, 4, s.Count(Flap))
	assert.Equal(t, 0, s.Count(Gear))
	assert.Equal(t, 0, s.Count(Surface(-1)))
	assert.Equal(t, 0, s.Count(surfaceCount))

	assert.Equal(t, "aileron", Aileron.String())
	assert.Equal(t, "gear", Gear.String())
	assert.Equal(t, "unknown", surfaceCount.String())
}

func TestSurfaceOf(t *testing.T) {
	tests := []struct {
		label string
		want  Surface
		ok    bool
	}{
		{"Ailerons", Aileron, true},
		{"Quer", Aileron, true},
		{"Airbrake.", Airbrake, true},
		{"Drossel", Motor, true},
		{"Throttle", Motor, true},
		{"Smoke", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := SurfaceOf(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.label)
		}
	}
}

func TestTailMixString(t *testing.T) {
	assert.Equal(t, "V-Tail Mix", TailMixVTail.String())
	assert.Equal(t, "Ailevator", TailMixAilvator.String())
	assert.Equal(t, "Delta/Elevon Mix", TailMixDelta.String())
	assert.Equal(t, "", TailMixNone.String())
}

func TestOrientation(t *testing.T) {
	o := Orientation{"SA": false, "SB": true}
	assert.False(t, o.Normal("SA"))
	assert.True(t, o.Normal("SB"))
	assert.True(t, o.Normal("SC"))

	var none Orientation
	assert.True(t, none.Normal("SA"))
}
