// Package object defines the simulation entities and the registry that owns them.
//
// Entities are plain data with small helpers. They never reach into each
// other; all cross-entity rules live in the loop package, which is the sole
// owner and mutator of a Registry.
package object

import "github.com/tomz197/unicorns/internal/physics"

// Field describes the playfield bounds entities are kept inside.
type Field struct {
	Width  float64
	Height float64
}

// Contains reports whether the point lies within the field extended by margin on every side.
func (f Field) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= f.Width+margin && y >= -margin && y <= f.Height+margin
}

// Bounds returns the field as a rectangle.
func (f Field) Bounds() physics.Rect {
	return physics.Rect{W: f.Width, H: f.Height}
}

// decay reduces a countdown timer by dt, never going below zero.
func decay(t *float64, dt float64) {
	if *t <= 0 {
		*t = 0
		return
	}
	*t -= dt
	if *t < 0 {
		*t = 0
	}
}

// Decay reduces each countdown timer by dt, clamping at zero.
func Decay(dt float64, timers ...*float64) {
	for _, t := range timers {
		decay(t, dt)
	}
}
