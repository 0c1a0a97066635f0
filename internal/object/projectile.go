package object

import (
	"github.com/tomz197/unicorns/internal/loop/config"
)

// Owner routes a projectile to the right collision pass.
type Owner uint8

const (
	Friendly Owner = iota // Fired by the player, hits enemies
	Hostile               // Fired by special enemies, hits the player
)

func (o Owner) String() string {
	if o == Friendly {
		return "friendly"
	}
	return "hostile"
}

// Projectile is a ray shot or an enemy bolt.
type Projectile struct {
	Owner    Owner
	X, Y     float64 // Position
	VX, VY   float64 // Velocity
	Lifetime float64 // Seconds remaining before removal
	Radius   float64
	Damage   int

	destroyed bool
}

// NewRay creates a friendly projectile traveling along the unit direction (dx, dy).
func NewRay(x, y, dx, dy float64) *Projectile {
	return &Projectile{
		Owner:    Friendly,
		X:        x + dx*config.RayMuzzle,
		Y:        y + dy*config.RayMuzzle,
		VX:       dx * config.RaySpeed,
		VY:       dy * config.RaySpeed,
		Lifetime: config.RayLifetime,
		Radius:   config.RayRadius,
		Damage:   config.RayDamage,
	}
}

// NewBolt creates a hostile projectile traveling along the unit direction (dx, dy).
func NewBolt(x, y, dx, dy float64) *Projectile {
	return &Projectile{
		Owner:    Hostile,
		X:        x + dx*config.EnemyFacingOffset,
		Y:        y + dy*config.EnemyFacingOffset,
		VX:       dx * config.BoltSpeed,
		VY:       dy * config.BoltSpeed,
		Lifetime: config.BoltLifetime,
		Radius:   config.BoltRadius,
		Damage:   config.DamageLaser,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
	p.Lifetime = 0
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Lifetime <= 0
}

// Step moves the projectile and destroys it once it leaves the field.
// Lifetime is counted down by the registry's timer pass.
func (p *Projectile) Step(dt float64, f Field) {
	if p.IsDestroyed() {
		return
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	if !f.Contains(p.X, p.Y, p.Radius) {
		p.MarkDestroyed()
	}
}
