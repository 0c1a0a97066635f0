package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
	"github.com/tomz197/unicorns/internal/physics"
)

// stepSpawn runs the spawn controller for the current phase.
func (s *Sim) stepSpawn(dt float64, g gates) {
	if g.NormalSpawn {
		s.spawnAccum += dt
		for s.spawnAccum >= config.SpawnInterval {
			s.spawnAccum -= config.SpawnInterval
			s.trySpawn()
		}
	}
	if g.FinalSpawn {
		s.stepFinalWave()
	}
}

// trySpawn adds one enemy unless the population cap is met. A special roll
// is downgraded to a normal enemy when the special cap is already reached.
func (s *Sim) trySpawn() *object.Enemy {
	if s.reg.LiveEnemies() >= config.MaxEnemies {
		return nil
	}

	special := s.rng.Float64() < config.SpecialChance
	if special && s.reg.CountSpecials() >= config.SpecialCap {
		special = false
		s.log.Debug("special spawn downgraded", "specials", s.reg.CountSpecials())
	}

	x, y := s.pickSpawnPoint()
	var e *object.Enemy
	if special {
		e = object.NewSpecial(s.reg.NextID(), x, y, false, s.rng)
	} else {
		e = object.NewNormal(s.reg.NextID(), x, y, s.rng)
	}
	e.Facing = -sign(x)
	s.reg.AddEnemy(e)
	return e
}

// pickSpawnPoint samples off-screen positions on either side until one is
// clear of the player and every enemy. After the retry budget it settles
// for the last sample.
func (s *Sim) pickSpawnPoint() (x, y float64) {
	for i := 0; i < config.SpawnRetries; i++ {
		x = s.edgeX(physics.RandSign(s.rng))
		y = physics.RandRange(s.rng, config.BandTop, config.BandBottom)
		if s.spawnClear(x, y) {
			return x, y
		}
	}
	return x, y
}

func (s *Sim) spawnClear(x, y float64) bool {
	p := s.reg.Player
	if physics.DistanceSquared(x, y, p.X, p.Y) < config.MinSpawnFromPlayer*config.MinSpawnFromPlayer {
		return false
	}
	for _, e := range s.reg.Enemies {
		if e.Dead() {
			continue
		}
		if physics.DistanceSquared(x, y, e.X, e.Y) < config.MinSpawnFromEnemy*config.MinSpawnFromEnemy {
			return false
		}
	}
	return true
}

// edgeX returns the off-screen x coordinate for side -1 (left) or +1 (right).
func (s *Sim) edgeX(side float64) float64 {
	if side < 0 {
		return -config.SpawnEdgeOffset
	}
	return s.reg.Field.Width + config.SpawnEdgeOffset
}

// stepFinalWave spawns the scripted final enemies, alternating sides,
// one every FinalSpawnInterval. The population cap does not apply.
func (s *Sim) stepFinalWave() {
	if s.finalSpawned >= config.FinalWaveCount || s.finalTimer > 0 {
		return
	}

	side := -1.0
	if s.finalSpawned%2 == 1 {
		side = 1
	}
	x := s.edgeX(side)
	y := physics.RandRange(s.rng, config.BandTop, config.BandBottom)

	e := object.NewSpecial(s.reg.NextID(), x, y, true, s.rng)
	e.Facing = -side
	s.reg.AddEnemy(e)

	s.finalSpawned++
	s.finalTimer = config.FinalSpawnInterval
	s.log.Debug("final enemy spawned", "n", s.finalSpawned, "side", side)
}
