package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
	"github.com/tomz197/unicorns/internal/physics"
)

// stepEnemies moves every enemy toward the player, lets specials fire and
// culls enemies that strayed far outside the field. Final-wave enemies are
// never culled; they are held at the cull boundary instead.
func (s *Sim) stepEnemies(dt float64) {
	p := s.reg.Player
	f := s.reg.Field

	for _, e := range s.reg.Enemies {
		if e.Dead() {
			continue
		}

		nx, ny, _ := physics.Normalize(p.X-e.X, p.Y-e.Y)
		e.DirX, e.DirY = nx, ny
		if nx != 0 {
			e.Facing = sign(nx)
		}
		e.X += nx * e.Speed * dt
		e.Y += ny * e.Speed * dt

		if e.IsSpecial() && e.Special.FireCooldown <= 0 && f.Contains(e.X, e.Y, 0) {
			s.fireBolt(e)
			e.Special.FireCooldown = physics.RandRange(s.rng, config.SpecialFireMin, config.SpecialFireMax)
		}

		if !f.Contains(e.X, e.Y, config.CullMargin) {
			if e.IsFinal() {
				e.X = physics.Clamp(e.X, -config.CullMargin, f.Width+config.CullMargin)
				e.Y = physics.Clamp(e.Y, -config.CullMargin, f.Height+config.CullMargin)
				continue
			}
			e.MarkDead()
			s.log.Debug("enemy culled", "id", e.ID, "x", e.X, "y", e.Y)
		}
	}

	s.reg.CompactEnemies()
}

// fireBolt shoots a hostile bolt aimed at the player's current position.
func (s *Sim) fireBolt(e *object.Enemy) {
	p := s.reg.Player
	dx, dy, dist := physics.Normalize(p.X-e.X, p.Y-e.Y)
	if dist == 0 {
		dx, dy = e.Facing, 0
	}
	s.reg.AddProjectile(object.NewBolt(e.X, e.Y, dx, dy))
}
