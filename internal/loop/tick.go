package loop

import (
	"github.com/tomz197/unicorns/internal/object"
)

// Step runs the tick pipeline once with a step of dt seconds.
// The order is fixed: timers, movement, spawning, enemy AI, projectiles,
// combat, particles, then the phase check.
func (s *Sim) Step(dt float64, in Intent) {
	if dt < 0 {
		dt = 0
	}
	s.ticks++
	g := s.phase.gates()

	s.decayTimers(dt, g)

	if g.Input {
		s.movePlayer(dt, in)
	}

	s.stepSpawn(dt, g)

	if g.Enemies {
		s.stepEnemies(dt)
	}

	if g.Projectiles {
		s.stepProjectiles(dt)
	}

	if g.Combat {
		s.resolveCombat(in)
	}

	s.stepParticles(dt)

	s.stepPhase(dt)

	s.enforceInvariants()
}

// decayTimers is the single pass that counts down every timer.
func (s *Sim) decayTimers(dt float64, g gates) {
	p := s.reg.Player
	hadPower := p.Powered()

	p.DecayTimers(dt)

	// Ray and mega may overlap; the power is lost once neither is left.
	if hadPower && !p.Powered() {
		s.emit(EventPowerLost, p.X, p.Y)
	}

	s.reg.DecayLifetimes(dt, g.Projectiles)

	if g.StageTimer {
		object.Decay(dt, &s.stageRemaining)
	}
	object.Decay(dt,
		&s.finalTimer,
		&s.dialogueRemaining,
		&s.victoryRemaining,
		&s.fireworkTimer,
		&s.gameOverRemaining,
	)

	if g.Enemies {
		for _, e := range s.reg.Enemies {
			if e.IsSpecial() {
				object.Decay(dt, &e.Special.FireCooldown)
			}
		}
	}
}

// movePlayer applies the movement intent and keeps the player in the band.
func (s *Sim) movePlayer(dt float64, in Intent) {
	p := s.reg.Player
	dx, dy := in.Direction()
	if dx != 0 {
		p.Facing = sign(dx)
	}

	spd := p.MoveSpeed(in.Sprint)
	p.X += dx * spd * dt
	p.Y += dy * spd * dt
	p.ClampToField(s.reg.Field)
}

func (s *Sim) stepProjectiles(dt float64) {
	for _, pr := range s.reg.Friendly {
		pr.Step(dt, s.reg.Field)
	}
	for _, pr := range s.reg.Hostile {
		pr.Step(dt, s.reg.Field)
	}
	s.reg.CompactProjectiles()
}

func (s *Sim) stepParticles(dt float64) {
	s.reg.StepParticles(dt)
}
