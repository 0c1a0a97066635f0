package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
)

// killEnemy is the only way an enemy dies in combat. It awards score, feeds
// the power tracks, spawns confetti and checks for the end of the final wave.
// Calling it again for the same enemy only repeats the final-wave check.
//
// Powers are only granted while the player holds none: neither a special
// kill nor the kill counter progresses while ray or mega is active.
func (s *Sim) killEnemy(e *object.Enemy) {
	if !e.MarkDead() {
		s.checkFinalWaveCleared()
		return
	}

	p := s.reg.Player
	powered := p.Powered()

	ev := Event{Kind: EventKill, X: e.X, Y: e.Y, Phase: s.phase, Special: e.IsSpecial()}
	if e.IsSpecial() {
		p.Score += config.ScoreSpecial
	} else {
		p.Score += config.ScoreNormal
	}

	if !powered {
		p.KillsTowardMega++
		if e.IsSpecial() {
			s.grantRay()
		}
		if p.KillsTowardMega >= config.MegaKillThreshold {
			s.grantMega()
		}
	}

	s.reg.AddParticles(object.Burst(e.X, e.Y, config.KillParticles, 120, s.rng)...)
	s.events = append(s.events, ev)

	s.checkFinalWaveCleared()
}

// checkFinalWaveCleared moves to RESCUE once both final enemies have been
// spawned and none is left alive. enterPhase makes it one-shot.
func (s *Sim) checkFinalWaveCleared() {
	if s.phase != PhaseFinalWave {
		return
	}
	if s.finalSpawned < config.FinalWaveCount || s.reg.CountFinalAlive() > 0 {
		return
	}
	s.enterPhase(PhaseRescue)
}
