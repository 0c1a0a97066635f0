// Package loop implements the real-time update engine: the simulation
// context, its fixed-order tick pipeline and the frame driver around it.
package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
	"github.com/tomz197/unicorns/internal/physics"
)

// Options configures a simulation at session start.
type Options struct {
	StageLength time.Duration // Length of PLAY before the final wave (0 = default)
	Seed        int64         // Random seed (0 = time based)
	MaxStep     time.Duration // Longest simulated step per tick (0 = default)
	Logger      *log.Logger   // Defaults to the charmbracelet/log default logger
}

func (o Options) withDefaults() Options {
	if o.StageLength <= 0 {
		o.StageLength = config.DefaultStageLength
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.MaxStep <= 0 {
		o.MaxStep = config.MaxStep
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Sim is the simulation context. It owns the registry and every timer;
// nothing outside the tick pipeline mutates it.
type Sim struct {
	opts Options
	log  *log.Logger
	rng  *rand.Rand
	reg  *object.Registry
	grid *physics.SpatialGrid

	phase   Phase
	started [phaseCount]bool

	stageRemaining float64
	spawnAccum     float64

	finalSpawned int
	finalTimer   float64

	rescuer           *object.Rescuer
	rideDir           float64
	dialogueRemaining float64
	victoryRemaining  float64
	fireworkTimer     float64
	fireworks         []object.Firework
	gameOverRemaining float64

	events   []Event
	ticks    uint64
	sessions int
}

// New creates a simulation in its initial PLAY state.
func New(opts Options) *Sim {
	opts = opts.withDefaults()
	field := object.Field{Width: config.FieldWidth, Height: config.FieldHeight}

	s := &Sim{
		opts: opts,
		log:  opts.Logger.WithPrefix("sim"),
		rng:  rand.New(rand.NewSource(opts.Seed)),
		reg:  object.NewRegistry(field),
		grid: physics.NewSpatialGrid(field.Width, field.Height, 64),
	}
	s.reset()
	return s
}

// Reset reinitializes every collection and timer and returns to PLAY.
func (s *Sim) Reset() {
	s.reset()
	s.sessions++
	s.log.Debug("session reset", "session", s.sessions)
	s.emit(EventPhaseEnter, s.reg.Player.X, s.reg.Player.Y)
}

func (s *Sim) reset() {
	s.reg.Reset()
	s.phase = PhasePlay
	s.started = [phaseCount]bool{PhasePlay: true}

	s.stageRemaining = s.opts.StageLength.Seconds()
	s.spawnAccum = 0
	s.finalSpawned = 0
	s.finalTimer = 0

	s.rescuer = nil
	s.rideDir = 0
	s.dialogueRemaining = 0
	s.victoryRemaining = 0
	s.fireworkTimer = 0
	s.fireworks = nil
	s.gameOverRemaining = 0
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Registry exposes the entity registry for read-only inspection.
func (s *Sim) Registry() *object.Registry {
	return s.reg
}

// Player returns the player entity.
func (s *Sim) Player() *object.Player {
	return s.reg.Player
}

// StageRemaining returns the seconds left on the stage timer.
func (s *Sim) StageRemaining() float64 {
	return s.stageRemaining
}

// FinalSpawned returns how many final-wave enemies have been spawned.
func (s *Sim) FinalSpawned() int {
	return s.finalSpawned
}

// Rescuer returns the ending NPC, or nil outside the ending sequence.
func (s *Sim) Rescuer() *object.Rescuer {
	return s.rescuer
}

// Sessions returns how many times the session has been reset.
func (s *Sim) Sessions() int {
	return s.sessions
}

// Ticks returns the number of pipeline runs since creation.
func (s *Sim) Ticks() uint64 {
	return s.ticks
}
