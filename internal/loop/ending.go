package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
	"github.com/tomz197/unicorns/internal/physics"
)

// enterPhase performs a one-shot transition. It refuses transitions that were
// already taken this session or that the transition table does not allow.
func (s *Sim) enterPhase(to Phase) bool {
	if to >= phaseCount || s.started[to] {
		return false
	}
	if !canTransition(s.phase, to) {
		s.log.Warn("illegal phase transition", "from", s.phase, "to", to)
		return false
	}

	from := s.phase
	s.started[to] = true
	s.phase = to

	switch to {
	case PhaseFinalWave:
		s.spawnAccum = 0
		s.finalSpawned = 0
		s.finalTimer = 0
	case PhaseRescue:
		s.startRescue()
	case PhaseRide:
		s.startRide()
	case PhaseVictory:
		s.victoryRemaining = config.VictorySeconds
		s.fireworkTimer = 0
	case PhaseGameOver:
		s.gameOverRemaining = config.GameOverSeconds
	}

	p := s.reg.Player
	s.emit(EventPhaseEnter, p.X, p.Y)
	s.log.Info("phase", "from", from, "to", to, "score", p.Score)
	return true
}

// stepPhase polls the current phase's exit condition.
func (s *Sim) stepPhase(dt float64) {
	switch s.phase {
	case PhasePlay:
		if s.stageRemaining <= 0 {
			s.enterPhase(PhaseFinalWave)
		}
	case PhaseFinalWave:
		s.checkFinalWaveCleared()
	case PhaseRescue:
		s.stepRescue(dt)
	case PhaseRide:
		s.stepRide(dt)
	case PhaseVictory:
		s.stepVictory()
	case PhaseGameOver:
		if s.gameOverRemaining <= 0 {
			s.Reset()
		}
	}
}

// startRescue freezes combat and sends the rescuer in from the edge farther
// from the player.
func (s *Sim) startRescue() {
	s.reg.ClearCombat()

	p := s.reg.Player
	side := 1.0
	if p.X > s.reg.Field.Width/2 {
		side = -1
	}
	s.rescuer = object.NewRescuer(side, p.Y, s.reg.Field, config.SpawnEdgeOffset)
	s.dialogueRemaining = 0
}

func (s *Sim) stepRescue(dt float64) {
	r := s.rescuer
	if r == nil {
		return
	}
	p := s.reg.Player

	switch r.State {
	case object.RescuerWalking:
		if r.WalkToward(p.X, p.Y, config.RescuerSpeed, config.RescuerReach, dt) {
			r.State = object.RescuerTalking
			s.dialogueRemaining = config.DialogueSeconds
			p.Facing = sign(r.X - p.X)
			s.emit(EventDialogue, r.X, r.Y)
		}
	case object.RescuerTalking:
		if s.dialogueRemaining <= 0 {
			s.enterPhase(PhaseRide)
		}
	}
}

// DialogueLine returns the line shown during the dialogue window, or "".
func (s *Sim) DialogueLine() string {
	if s.phase != PhaseRescue || s.rescuer == nil || s.rescuer.State != object.RescuerTalking {
		return ""
	}
	n := len(config.DialogueLines)
	if n == 0 {
		return ""
	}
	elapsed := config.DialogueSeconds - s.dialogueRemaining
	i := physics.ClampInt(int(elapsed/(config.DialogueSeconds/float64(n))), 0, n-1)
	return config.DialogueLines[i]
}

// startRide mounts the rescuer and heads for the edge opposite the
// rescuer's entry.
func (s *Sim) startRide() {
	p := s.reg.Player
	r := s.rescuer
	s.rideDir = 1
	if r != nil {
		r.State = object.RescuerRiding
		s.rideDir = -r.EntrySide
	}
	p.Carrying = true
	p.Facing = s.rideDir
}

func (s *Sim) stepRide(dt float64) {
	p := s.reg.Player
	p.X += s.rideDir * config.RideSpeed * dt

	if r := s.rescuer; r != nil {
		r.X = p.X
		r.Y = p.Y - p.Size()/2
		r.VX = s.rideDir * config.RideSpeed
		r.VY = 0
	}

	if p.X < -config.RideExitMargin || p.X > s.reg.Field.Width+config.RideExitMargin {
		s.enterPhase(PhaseVictory)
	}
}

// stepVictory launches fireworks on a timer and resets the session at the end.
func (s *Sim) stepVictory() {
	if s.victoryRemaining <= 0 {
		s.Reset()
		return
	}
	if s.fireworkTimer > 0 {
		return
	}

	f := s.reg.Field
	fw := object.Firework{
		X:   physics.RandRange(s.rng, f.Width*0.15, f.Width*0.85),
		Y:   physics.RandRange(s.rng, config.BandTop, f.Height/2),
		Hue: object.Hue(1 + s.rng.Intn(5)),
	}
	s.fireworks = append(s.fireworks, fw)
	s.reg.AddParticles(object.Burst(fw.X, fw.Y, config.FireworkParticles, 160, s.rng)...)
	s.fireworkTimer = config.FireworkInterval
	s.emit(EventFirework, fw.X, fw.Y)
}

// Fireworks returns the bursts launched during the current victory.
func (s *Sim) Fireworks() []object.Firework {
	return s.fireworks
}
