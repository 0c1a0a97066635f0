package object

import (
	"math/rand"

	"github.com/tomz197/unicorns/internal/loop/config"
	"github.com/tomz197/unicorns/internal/physics"
)

// EnemyKind distinguishes the enemy variants.
type EnemyKind uint8

const (
	Normal EnemyKind = iota
	Special
)

func (k EnemyKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// SpecialTraits holds the fields only meaningful for special enemies.
type SpecialTraits struct {
	FireCooldown float64 // Seconds until the next bolt
	Final        bool    // Spawned by the final wave
}

// Enemy is a zombie chasing the player.
type Enemy struct {
	ID     int
	Kind   EnemyKind
	X, Y   float64 // Position (center)
	DirX   float64 // Unit heading
	DirY   float64
	Speed  float64
	W, H   float64
	HP     int
	Facing float64

	// Special is non-nil exactly when Kind == Special.
	Special *SpecialTraits

	dead bool
}

// NewNormal creates a normal enemy with a randomized walking speed.
func NewNormal(id int, x, y float64, rng *rand.Rand) *Enemy {
	return &Enemy{
		ID:     id,
		Kind:   Normal,
		X:      x,
		Y:      y,
		Speed:  physics.RandRange(rng, config.NormalSpeedMin, config.NormalSpeedMax),
		W:      config.EnemySize,
		H:      config.EnemySize,
		HP:     config.NormalHP,
		Facing: 1,
	}
}

// NewSpecial creates a special enemy. Final-wave enemies are tougher and faster.
func NewSpecial(id int, x, y float64, final bool, rng *rand.Rand) *Enemy {
	e := &Enemy{
		ID:     id,
		Kind:   Special,
		X:      x,
		Y:      y,
		Speed:  config.SpecialSpeed,
		W:      config.EnemySize,
		H:      config.EnemySize,
		HP:     config.SpecialHP,
		Facing: 1,
		Special: &SpecialTraits{
			FireCooldown: physics.RandRange(rng, config.SpecialFireMin, config.SpecialFireMax),
			Final:        final,
		},
	}
	if final {
		e.Speed = config.FinalSpeed
		e.HP = config.FinalHP
	}
	return e
}

// IsSpecial reports whether the enemy is a special (including final) enemy.
func (e *Enemy) IsSpecial() bool {
	return e.Kind == Special && e.Special != nil
}

// IsFinal reports whether the enemy was spawned by the final wave.
func (e *Enemy) IsFinal() bool {
	return e.IsSpecial() && e.Special.Final
}

// Demote turns a special enemy into a normal one, keeping its position.
func (e *Enemy) Demote() {
	if e.Kind != Special {
		return
	}
	e.Kind = Normal
	e.Special = nil
	if e.HP > config.NormalHP {
		e.HP = config.NormalHP
	}
}

// Bounds returns the enemy's hitbox.
func (e *Enemy) Bounds() physics.Rect {
	return physics.RectAround(e.X, e.Y, e.W, e.H)
}

// TakeDamage applies damage and returns true when hit points are depleted.
func (e *Enemy) TakeDamage(dmg int) bool {
	e.HP -= dmg
	return e.HP <= 0
}

// Dead reports whether the enemy was killed this tick and awaits removal.
func (e *Enemy) Dead() bool {
	return e.dead
}

// MarkDead flags the enemy for removal. Returns false if it was already dead.
func (e *Enemy) MarkDead() bool {
	if e.dead {
		return false
	}
	e.dead = true
	return true
}
