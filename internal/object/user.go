package object

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/physics"
)

// Player is the unicorn controlled through the input intent.
type Player struct {
	X, Y   float64 // Position (center)
	Facing float64 // -1 left, +1 right
	Speed  float64 // Base movement speed (px/s)

	Lives int
	HP    int
	Score int

	// KillsTowardMega counts kills scored while no power was active.
	KillsTowardMega int

	// Countdown timers in seconds, all decremented by the timer pass.
	Invuln        float64
	DashCooldown  float64
	RayCooldown   float64
	DashRemaining float64
	RayRemaining  float64
	MegaRemaining float64

	// Carrying is set while the rescuer rides along.
	Carrying bool
}

// NewPlayer creates a player at the given position with full health and lives.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Facing: 1,
		Speed:  config.PlayerSpeed,
		Lives:  config.InitialLives,
		HP:     config.HPMax,
	}
}

// HasRay reports whether the ranged attack is available.
func (p *Player) HasRay() bool {
	return p.RayRemaining > 0
}

// IsMega reports whether mega mode is active.
func (p *Player) IsMega() bool {
	return p.MegaRemaining > 0
}

// Powered reports whether any power is active.
func (p *Player) Powered() bool {
	return p.HasRay() || p.IsMega()
}

// Dashing reports whether the player is inside the dash window.
func (p *Player) Dashing() bool {
	return p.DashRemaining > 0
}

// Vulnerable reports whether contact and bolt damage can apply.
func (p *Player) Vulnerable() bool {
	return p.Invuln <= 0
}

// Scale is the sprite and hitbox scale factor.
func (p *Player) Scale() float64 {
	if p.IsMega() {
		return config.MegaScale
	}
	return 1
}

// Size returns the current edge length of the player's square hitbox.
func (p *Player) Size() float64 {
	return config.PlayerSize * p.Scale()
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() physics.Rect {
	s := p.Size()
	return physics.RectAround(p.X, p.Y, s, s)
}

// HitRadius is the tolerance radius used against hostile bolts.
func (p *Player) HitRadius() float64 {
	return config.PlayerHitRadius * p.Scale()
}

// MoveSpeed returns the movement speed for this tick.
func (p *Player) MoveSpeed(sprint bool) float64 {
	spd := p.Speed
	if sprint {
		spd *= config.SprintMultiplier
	}
	if p.IsMega() {
		spd *= config.MegaSpeedBonus
	}
	return spd
}

// ClampToField keeps the player inside the horizontal margins and the movement band.
func (p *Player) ClampToField(f Field) {
	p.X = physics.Clamp(p.X, config.PlayerMarginX, f.Width-config.PlayerMarginX)
	p.Y = physics.Clamp(p.Y, config.BandTop, config.BandBottom)
}

// TakeDamage reduces HP, clamping at zero. Returns true if HP is depleted.
func (p *Player) TakeDamage(dmg int) bool {
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		return true
	}
	return false
}

// ClearPowers drops ray and mega immediately.
func (p *Player) ClearPowers() {
	p.RayRemaining = 0
	p.MegaRemaining = 0
	p.RayCooldown = 0
}

// DecayTimers advances every player countdown by dt.
func (p *Player) DecayTimers(dt float64) {
	Decay(dt,
		&p.Invuln,
		&p.DashCooldown,
		&p.RayCooldown,
		&p.DashRemaining,
		&p.RayRemaining,
		&p.MegaRemaining,
	)
}
