package loop

import (
	"math"

	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/physics"
)

// Intent is the normalized player input consumed once per tick.
type Intent struct {
	DX     float64 `json:"dx" msgpack:"dx"`
	DY     float64 `json:"dy" msgpack:"dy"`
	Attack bool    `json:"attack" msgpack:"attack"`
	Sprint bool    `json:"sprint" msgpack:"sprint"`
}

// Direction returns the movement vector with each axis clamped to [-1,1],
// the deadzone applied and diagonal length capped at 1.
func (in Intent) Direction() (float64, float64) {
	dx := axis(in.DX)
	dy := axis(in.DY)
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	if l := math.Hypot(dx, dy); l > 1 {
		dx /= l
		dy /= l
	}
	return dx, dy
}

// Moving reports whether the intent carries a direction outside the deadzone.
func (in Intent) Moving() bool {
	dx, dy := in.Direction()
	return dx != 0 || dy != 0
}

func axis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = physics.Clamp(v, -1, 1)
	if math.Abs(v) < config.InputDeadzone {
		return 0
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
