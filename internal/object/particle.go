package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/unicorns/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Hue is a color hint for renderers.
type Hue uint8

const (
	HueWhite Hue = iota
	HueRed
	HueGreen
	HuePink
	HueGold
	HueBlue
)

// Confetti hues cycled through by kill bursts and fireworks.
var confetti = []Hue{HueRed, HueGreen, HuePink, HueGold, HueBlue}

// Particle is a short-lived visual effect with no gameplay weight.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per 1/60 s (1.0 = no drag)
	Hue         Hue
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64, hue Hue) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = config.ParticleDrag
	p.Hue = hue
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the registry.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Fraction is the remaining share of the particle's life in [0,1].
func (p *Particle) Fraction() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return math.Max(0, p.Lifetime/p.MaxLifetime)
}

// Step moves the particle. Returns true once it has expired.
// Lifetime is counted down by the registry's timer pass.
func (p *Particle) Step(dt float64) bool {
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60)
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Burst creates count particles in a circular burst pattern with
// lifetimes between 0.4 and 0.9 seconds.
func Burst(x, y float64, count int, speed float64, rng *rand.Rand) []*Particle {
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())
		life := 0.4 + rng.Float64()*0.5

		hue := confetti[rng.Intn(len(confetti))]
		out = append(out, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, hue))
	}
	return out
}
