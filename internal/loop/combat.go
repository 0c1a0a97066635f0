package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
	"github.com/tomz197/unicorns/internal/physics"
)

// resolveCombat handles the player's attack, projectile hits and enemy contact.
func (s *Sim) resolveCombat(in Intent) {
	if in.Attack {
		s.playerAttack(in)
	}

	s.resolveRays()
	s.resolveBolts()
	s.resolveContact()

	s.reg.CompactEnemies()
	s.reg.CompactProjectiles()
}

// combatOpen reports whether combat still applies this tick. A kill can
// move the phase on mid-pass.
func (s *Sim) combatOpen() bool {
	return s.phase.gates().Combat
}

// playerAttack fires the ray while it is active and dashes otherwise.
func (s *Sim) playerAttack(in Intent) {
	p := s.reg.Player
	if p.HasRay() {
		if p.RayCooldown <= 0 {
			s.fireRay(in)
		}
		return
	}
	if p.DashCooldown <= 0 {
		s.dash(in)
	}
}

// attackDirection is the input direction if any, otherwise the facing.
func attackDirection(p *object.Player, in Intent) (float64, float64) {
	dx, dy := in.Direction()
	nx, ny, l := physics.Normalize(dx, dy)
	if l == 0 {
		return p.Facing, 0
	}
	return nx, ny
}

func (s *Sim) fireRay(in Intent) {
	p := s.reg.Player
	dx, dy := attackDirection(p, in)
	if dx != 0 {
		p.Facing = sign(dx)
	}
	s.reg.AddProjectile(object.NewRay(p.X, p.Y, dx, dy))
	p.RayCooldown = config.RayCooldown
	s.emit(EventRayFire, p.X, p.Y)
}

// dash displaces the player, grants a short invulnerability window and
// hits every enemy overlapping the box in front of the player.
func (s *Sim) dash(in Intent) {
	p := s.reg.Player
	dx, dy := attackDirection(p, in)
	if dx != 0 {
		p.Facing = sign(dx)
	}

	p.X += dx * config.DashDistance
	p.Y += dy * config.DashDistance
	p.ClampToField(s.reg.Field)

	if p.Invuln < config.DashInvuln {
		p.Invuln = config.DashInvuln
	}
	p.DashRemaining = config.DashActive
	p.DashCooldown = config.DashCooldown
	s.emit(EventDash, p.X, p.Y)

	hit := meleeBox(p)
	for _, e := range s.reg.Enemies {
		if !s.combatOpen() {
			return
		}
		if e.Dead() || !hit.Overlaps(e.Bounds()) {
			continue
		}
		s.damageEnemy(e, config.MeleeDamage)
	}
}

// meleeBox is the hit rectangle projected in front of the player.
func meleeBox(p *object.Player) physics.Rect {
	reach := config.MeleeReach * p.Scale()
	h := config.MeleeHeight * p.Scale()
	cx := p.X + p.Facing*(p.Size()/2+reach/2)
	return physics.RectAround(cx, p.Y, reach, h)
}

// resolveRays checks friendly projectiles against enemies. Each projectile
// scores at most one hit.
func (s *Sim) resolveRays() {
	if len(s.reg.Friendly) == 0 || len(s.reg.Enemies) == 0 {
		return
	}

	enemies := s.reg.Enemies
	s.grid.Clear()
	for i, e := range enemies {
		if !e.Dead() {
			s.grid.Insert(e.X, e.Y, i)
		}
	}

	for _, pr := range s.reg.Friendly {
		if !s.combatOpen() {
			return
		}
		if pr.IsDestroyed() {
			continue
		}
		s.grid.QueryAround(pr.X, pr.Y, func(i int) bool {
			e := enemies[i]
			if e.Dead() {
				return false
			}
			if !physics.CirclesOverlap(pr.X, pr.Y, pr.Radius, e.X, e.Y, config.EnemyHitRadius) {
				return false
			}
			pr.MarkDestroyed()
			s.damageEnemy(e, pr.Damage)
			return true
		})
	}
}

// resolveBolts checks hostile bolts against the player. A bolt is removed on
// its first contact even when the player is invulnerable.
func (s *Sim) resolveBolts() {
	p := s.reg.Player
	for _, b := range s.reg.Hostile {
		if !s.combatOpen() {
			return
		}
		if b.IsDestroyed() {
			continue
		}
		if !physics.CirclesOverlap(b.X, b.Y, b.Radius, p.X, p.Y, p.HitRadius()) {
			continue
		}
		b.MarkDestroyed()
		if p.Dashing() {
			continue
		}
		s.damagePlayer(b.Damage)
	}
}

// resolveContact damages the player for every overlapping enemy, pushing
// the player away. Dashing or invulnerable players take no contact damage.
func (s *Sim) resolveContact() {
	p := s.reg.Player
	for _, e := range s.reg.Enemies {
		if !s.combatOpen() {
			return
		}
		if e.Dead() || p.Dashing() || !p.Vulnerable() {
			continue
		}
		if !p.Bounds().Overlaps(e.Bounds()) {
			continue
		}

		s.damagePlayer(config.DamageContact)

		dir := p.X - e.X
		if dir == 0 {
			dir = -e.Facing
		}
		p.X += sign(dir) * config.ContactPushback
		p.ClampToField(s.reg.Field)
	}
}

// damageEnemy applies damage and kills the enemy once its hit points run out.
func (s *Sim) damageEnemy(e *object.Enemy, dmg int) {
	if e.Dead() {
		return
	}
	if e.TakeDamage(dmg) {
		s.killEnemy(e)
		return
	}
	s.reg.AddParticles(object.Burst(e.X, e.Y, config.HitParticles, 60, s.rng)...)
	s.emit(EventEnemyHit, e.X, e.Y)
}
