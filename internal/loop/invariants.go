package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
)

// enforceInvariants corrects state in place after every tick rather than
// failing: hit points and lives are clamped, surplus specials demoted and
// surplus final enemies dropped, particles pruned.
// During the final wave only the two finals may be special.
func (s *Sim) enforceInvariants() {
	p := s.reg.Player
	if p.HP < 0 || p.HP > config.HPMax {
		s.log.Warn("hp out of range", "hp", p.HP)
		p.HP = max(0, min(p.HP, config.HPMax))
	}
	if p.Lives < 0 || p.Lives > config.InitialLives {
		s.log.Warn("lives out of range", "lives", p.Lives)
		p.Lives = max(0, min(p.Lives, config.InitialLives))
	}

	if limit, ok := specialLimit(s.phase); ok {
		specials := 0
		for _, e := range s.reg.Enemies {
			if e.Dead() || !e.IsSpecial() || e.IsFinal() {
				continue
			}
			specials++
			if specials > limit {
				s.log.Warn("demoting surplus special", "id", e.ID, "phase", s.phase)
				e.Demote()
			}
		}
	}

	finals := 0
	for _, e := range s.reg.Enemies {
		if e.Dead() || !e.IsFinal() {
			continue
		}
		finals++
		if finals > config.FinalWaveCount {
			s.log.Warn("dropping surplus final enemy", "id", e.ID)
			e.MarkDead()
		}
	}
	s.reg.CompactEnemies()

	s.reg.PruneParticles(config.MaxParticles)
}

// specialLimit is the number of non-final specials allowed alive in phase p.
// Phases without combat report false.
func specialLimit(p Phase) (int, bool) {
	switch p {
	case PhasePlay:
		return config.SpecialCap, true
	case PhaseFinalWave:
		return 0, true
	default:
		return 0, false
	}
}
