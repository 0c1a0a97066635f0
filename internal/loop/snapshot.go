package loop

import (
	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/object"
)

// Snapshot is a deep copy of the state a renderer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	Phase     string           `json:"phase" msgpack:"phase"`
	Width     float64          `json:"w" msgpack:"w"`
	Height    float64          `json:"h" msgpack:"h"`
	Player    PlayerView       `json:"player" msgpack:"player"`
	Enemies   []EnemyView      `json:"enemies" msgpack:"enemies"`
	Rays      []ProjectileView `json:"rays" msgpack:"rays"`
	Bolts     []ProjectileView `json:"bolts" msgpack:"bolts"`
	Particles []ParticleView   `json:"particles" msgpack:"particles"`
	Rescuer   *RescuerView     `json:"rescuer,omitempty" msgpack:"rescuer,omitempty"`
	HUD       HUD              `json:"hud" msgpack:"hud"`
}

// PlayerView is the rendered state of the player.
type PlayerView struct {
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	Facing   float64 `json:"f" msgpack:"f"`
	Size     float64 `json:"s" msgpack:"s"`
	Invuln   bool    `json:"inv" msgpack:"inv"`
	Dashing  bool    `json:"dash" msgpack:"dash"`
	Ray      bool    `json:"ray" msgpack:"ray"`
	Mega     bool    `json:"mega" msgpack:"mega"`
	Carrying bool    `json:"carry" msgpack:"carry"`
}

// EnemyView is the rendered state of an enemy.
type EnemyView struct {
	ID     int     `json:"id" msgpack:"id"`
	Kind   string  `json:"k" msgpack:"k"`
	Final  bool    `json:"fin,omitempty" msgpack:"fin,omitempty"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	W      float64 `json:"w" msgpack:"w"`
	H      float64 `json:"h" msgpack:"h"`
	HP     int     `json:"hp" msgpack:"hp"`
	Facing float64 `json:"f" msgpack:"f"`
}

// ProjectileView is the rendered state of a ray or bolt.
type ProjectileView struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
}

// ParticleView is the rendered state of a particle.
type ParticleView struct {
	X    float64    `json:"x" msgpack:"x"`
	Y    float64    `json:"y" msgpack:"y"`
	Hue  object.Hue `json:"c" msgpack:"c"`
	Life float64    `json:"l" msgpack:"l"` // Remaining fraction
}

// RescuerView is the rendered state of the ending NPC.
type RescuerView struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	State string  `json:"st" msgpack:"st"`
}

// HUD carries status bar values and phase overlays.
type HUD struct {
	HP             int     `json:"hp" msgpack:"hp"`
	HPMax          int     `json:"hpMax" msgpack:"hpMax"`
	Lives          int     `json:"lives" msgpack:"lives"`
	Score          int     `json:"score" msgpack:"score"`
	RayFraction    float64 `json:"ray" msgpack:"ray"`
	MegaFraction   float64 `json:"mega" msgpack:"mega"`
	MegaProgress   float64 `json:"megaProgress" msgpack:"megaProgress"`
	StageRemaining float64 `json:"stage" msgpack:"stage"`
	Dialogue       string  `json:"dialogue,omitempty" msgpack:"dialogue,omitempty"`
	Banner         string  `json:"banner,omitempty" msgpack:"banner,omitempty"`
	Paused         bool    `json:"paused,omitempty" msgpack:"paused,omitempty"`
}

// Snapshot copies the current state for rendering.
func (s *Sim) Snapshot() Snapshot {
	reg := s.reg
	p := reg.Player

	snap := Snapshot{
		Phase:  s.phase.String(),
		Width:  reg.Field.Width,
		Height: reg.Field.Height,
		Player: PlayerView{
			X:        p.X,
			Y:        p.Y,
			Facing:   p.Facing,
			Size:     p.Size(),
			Invuln:   !p.Vulnerable(),
			Dashing:  p.Dashing(),
			Ray:      p.HasRay(),
			Mega:     p.IsMega(),
			Carrying: p.Carrying,
		},
		Enemies:   make([]EnemyView, 0, len(reg.Enemies)),
		Rays:      make([]ProjectileView, 0, len(reg.Friendly)),
		Bolts:     make([]ProjectileView, 0, len(reg.Hostile)),
		Particles: make([]ParticleView, 0, len(reg.Particles)),
		HUD: HUD{
			HP:             p.HP,
			HPMax:          config.HPMax,
			Lives:          p.Lives,
			Score:          p.Score,
			RayFraction:    p.RayRemaining / config.RayDuration,
			MegaFraction:   p.MegaRemaining / config.MegaDuration,
			MegaProgress:   float64(p.KillsTowardMega) / config.MegaKillThreshold,
			StageRemaining: s.stageRemaining,
			Dialogue:       s.DialogueLine(),
			Banner:         s.banner(),
		},
	}

	for _, e := range reg.Enemies {
		if e.Dead() {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:     e.ID,
			Kind:   e.Kind.String(),
			Final:  e.IsFinal(),
			X:      e.X,
			Y:      e.Y,
			W:      e.W,
			H:      e.H,
			HP:     e.HP,
			Facing: e.Facing,
		})
	}
	for _, pr := range reg.Friendly {
		snap.Rays = append(snap.Rays, ProjectileView{X: pr.X, Y: pr.Y, Radius: pr.Radius})
	}
	for _, pr := range reg.Hostile {
		snap.Bolts = append(snap.Bolts, ProjectileView{X: pr.X, Y: pr.Y, Radius: pr.Radius})
	}
	for _, pt := range reg.Particles {
		snap.Particles = append(snap.Particles, ParticleView{X: pt.X, Y: pt.Y, Hue: pt.Hue, Life: pt.Fraction()})
	}
	if r := s.rescuer; r != nil {
		snap.Rescuer = &RescuerView{X: r.X, Y: r.Y, State: r.State.String()}
	}
	return snap
}

func (s *Sim) banner() string {
	switch s.phase {
	case PhaseFinalWave:
		return "FINAL WAVE"
	case PhaseVictory:
		return "VICTORY!"
	case PhaseGameOver:
		return "GAME OVER"
	default:
		return ""
	}
}
