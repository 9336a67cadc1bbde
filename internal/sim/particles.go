package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tekkers/internal/config"
)

// Particle is a short-lived spark from a bounce.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Life     float64 // Remaining life in (0, 1]
}

// Particles holds the live sparks. They keep moving in every phase.
type Particles struct {
	cfg   config.Particles
	items []Particle
}

// NewParticles creates an empty particle set.
func NewParticles(cfg config.Particles) *Particles {
	return &Particles{cfg: cfg}
}

// Burst spawns one batch of sparks at a contact point.
func (p *Particles) Burst(at mgl64.Vec3, rng Rand) {
	half := p.cfg.Spread / 2
	for i := 0; i < p.cfg.Count; i++ {
		p.items = append(p.items, Particle{
			Position: at,
			Velocity: mgl64.Vec3{
				symmetric(rng, half),
				rng.Float64() * p.cfg.Lift,
				symmetric(rng, half),
			},
			Life: 1,
		})
	}
}

// Update moves every spark and drops the expired ones.
func (p *Particles) Update(dt float64) {
	live := p.items[:0]
	for _, it := range p.items {
		it.Velocity[1] += p.cfg.Gravity * dt
		it.Position = it.Position.Add(it.Velocity.Mul(dt))
		it.Life -= p.cfg.Decay * dt
		if it.Life <= 0 {
			continue
		}
		live = append(live, it)
	}
	p.items = live
}

// Snapshot returns a copy of the live sparks.
func (p *Particles) Snapshot() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of live sparks.
func (p *Particles) Len() int {
	return len(p.items)
}
