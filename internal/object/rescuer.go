package object

import (
	"github.com/tomz197/unicorns/internal/physics"
)

// RescuerState tracks the rescuer through the ending sequence.
type RescuerState uint8

const (
	RescuerWalking RescuerState = iota
	RescuerTalking
	RescuerRiding
)

func (s RescuerState) String() string {
	switch s {
	case RescuerWalking:
		return "walking"
	case RescuerTalking:
		return "talking"
	case RescuerRiding:
		return "riding"
	default:
		return "unknown"
	}
}

// Rescuer is the NPC who walks in after the final wave and rides away with the player.
type Rescuer struct {
	X, Y   float64
	VX, VY float64
	State  RescuerState
	// EntrySide is -1 when the rescuer entered from the left edge, +1 from the right.
	EntrySide float64
}

// NewRescuer places the rescuer just outside the given side of the field.
func NewRescuer(side float64, y float64, f Field, offset float64) *Rescuer {
	x := -offset
	if side > 0 {
		x = f.Width + offset
	}
	return &Rescuer{X: x, Y: y, EntrySide: side}
}

// WalkToward moves the rescuer toward (tx, ty) at speed. Returns true once
// within reach of the target.
func (r *Rescuer) WalkToward(tx, ty, speed, reach, dt float64) bool {
	dx, dy := tx-r.X, ty-r.Y
	nx, ny, dist := physics.Normalize(dx, dy)
	if dist <= reach {
		r.VX, r.VY = 0, 0
		return true
	}
	step := speed * dt
	if step > dist-reach {
		step = dist - reach
	}
	r.VX, r.VY = nx*speed, ny*speed
	r.X += nx * step
	r.Y += ny * step
	return physics.Distance(r.X, r.Y, tx, ty) <= reach+1e-9
}

// Firework is a scheduled victory burst.
type Firework struct {
	X, Y float64
	Hue  Hue
}
