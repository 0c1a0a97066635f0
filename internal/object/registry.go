package object

import (
	"github.com/tomz197/unicorns/internal/loop/config"
)

// Registry owns every live entity of a session.
// Only the tick pipeline mutates it; renderers read snapshots.
type Registry struct {
	Field     Field
	Player    *Player
	Enemies   []*Enemy
	Friendly  []*Projectile
	Hostile   []*Projectile
	Particles []*Particle

	nextID int
}

// NewRegistry creates an empty registry with the player at the field center.
func NewRegistry(f Field) *Registry {
	r := &Registry{Field: f}
	r.Reset()
	return r
}

// Reset releases every entity and spawns a fresh player.
func (r *Registry) Reset() {
	r.ClearCombat()
	r.clearParticles()
	r.Player = NewPlayer(r.Field.Width/2, (config.BandTop+config.BandBottom)/2)
	r.nextID = 0
}

// NextID returns a fresh enemy identifier.
func (r *Registry) NextID() int {
	r.nextID++
	return r.nextID
}

// AddEnemy appends an enemy to the registry.
func (r *Registry) AddEnemy(e *Enemy) {
	r.Enemies = append(r.Enemies, e)
}

// AddProjectile routes a projectile into the collection for its owner.
func (r *Registry) AddProjectile(p *Projectile) {
	if p.Owner == Friendly {
		r.Friendly = append(r.Friendly, p)
		return
	}
	r.Hostile = append(r.Hostile, p)
}

// AddParticles appends particles, pruning the oldest when over the cap.
func (r *Registry) AddParticles(ps ...*Particle) {
	r.Particles = append(r.Particles, ps...)
	r.PruneParticles(config.MaxParticles)
}

// PruneParticles drops the oldest particles until at most max remain.
func (r *Registry) PruneParticles(max int) int {
	over := len(r.Particles) - max
	if over <= 0 {
		return 0
	}
	for _, p := range r.Particles[:over] {
		p.Release()
	}
	n := copy(r.Particles, r.Particles[over:])
	for i := n; i < len(r.Particles); i++ {
		r.Particles[i] = nil
	}
	r.Particles = r.Particles[:n]
	return over
}

// DecayLifetimes counts down particle lifetimes, and projectile lifetimes
// when projectiles are active this tick.
func (r *Registry) DecayLifetimes(dt float64, projectiles bool) {
	for _, p := range r.Particles {
		Decay(dt, &p.Lifetime)
	}
	if !projectiles {
		return
	}
	for _, p := range r.Friendly {
		Decay(dt, &p.Lifetime)
	}
	for _, p := range r.Hostile {
		Decay(dt, &p.Lifetime)
	}
}

// StepParticles advances every particle and drops expired ones.
func (r *Registry) StepParticles(dt float64) {
	kept := r.Particles[:0]
	for _, p := range r.Particles {
		if p.Step(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(r.Particles); i++ {
		r.Particles[i] = nil
	}
	r.Particles = kept
}

// CompactEnemies removes dead enemies.
func (r *Registry) CompactEnemies() {
	kept := r.Enemies[:0]
	for _, e := range r.Enemies {
		if !e.Dead() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.Enemies); i++ {
		r.Enemies[i] = nil
	}
	r.Enemies = kept
}

// CompactProjectiles removes destroyed projectiles from both collections.
func (r *Registry) CompactProjectiles() {
	r.Friendly = compactProjectiles(r.Friendly)
	r.Hostile = compactProjectiles(r.Hostile)
}

func compactProjectiles(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}

// LiveEnemies counts enemies not yet killed.
func (r *Registry) LiveEnemies() int {
	n := 0
	for _, e := range r.Enemies {
		if !e.Dead() {
			n++
		}
	}
	return n
}

// CountSpecials counts live special enemies that were not spawned by the final wave.
func (r *Registry) CountSpecials() int {
	n := 0
	for _, e := range r.Enemies {
		if !e.Dead() && e.IsSpecial() && !e.IsFinal() {
			n++
		}
	}
	return n
}

// CountFinalAlive counts live final-wave enemies.
func (r *Registry) CountFinalAlive() int {
	n := 0
	for _, e := range r.Enemies {
		if !e.Dead() && e.IsFinal() {
			n++
		}
	}
	return n
}

// ClearCombat drops all enemies and projectiles.
func (r *Registry) ClearCombat() {
	clear(r.Enemies)
	r.Enemies = r.Enemies[:0]
	clear(r.Friendly)
	r.Friendly = r.Friendly[:0]
	clear(r.Hostile)
	r.Hostile = r.Hostile[:0]
}

func (r *Registry) clearParticles() {
	for _, p := range r.Particles {
		p.Release()
	}
	clear(r.Particles)
	r.Particles = r.Particles[:0]
}
