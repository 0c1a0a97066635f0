package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
)

// damagePlayer applies damage unless the player is invulnerable. Running out
// of hit points costs a life and clears every power; losing the last life
// ends the session in GAME_OVER.
func (s *Sim) damagePlayer(dmg int) {
	p := s.reg.Player
	if !p.Vulnerable() {
		return
	}
	s.emit(EventPlayerHit, p.X, p.Y)

	if !p.TakeDamage(dmg) {
		p.Invuln = config.HitInvuln
		return
	}

	p.Lives--
	if p.Powered() {
		p.ClearPowers()
		s.emit(EventPowerLost, p.X, p.Y)
	}
	s.emit(EventLifeLost, p.X, p.Y)

	if p.Lives <= 0 {
		p.Lives = 0
		p.HP = 0
		s.log.Info("game over", "score", p.Score)
		s.enterPhase(PhaseGameOver)
		return
	}

	p.HP = config.HPMax
	p.Invuln = config.RespawnInvuln
	s.log.Debug("life lost", "lives", p.Lives)
}

// grantRay starts the ranged power window.
func (s *Sim) grantRay() {
	p := s.reg.Player
	p.RayRemaining = config.RayDuration
	p.RayCooldown = 0
	s.emit(EventRayGained, p.X, p.Y)
}

// grantMega starts mega mode and resets the kill counter.
func (s *Sim) grantMega() {
	p := s.reg.Player
	p.MegaRemaining = config.MegaDuration
	p.KillsTowardMega = 0
	s.emit(EventMegaGained, p.X, p.Y)
}
