package loop

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/planetmerge/internal/draw"
)

// Particle is a short-lived spark drawn where two balls fuse.
// Positions are in world units.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64
	Drag        float64 // Velocity kept per 1/60 s (1.0 = no drag)
}

// burst is the set of live particles.
type burst struct {
	particles []Particle
	rng       *rand.Rand
}

func newBurst(rng *rand.Rand) *burst {
	return &burst{rng: rng}
}

// Spawn adds count particles flying out of (x, y) in random directions.
func (b *burst) Spawn(x, y float64, count int, speed, lifetime float64) {
	for range count {
		angle := b.rng.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%
		spd := speed * (0.5 + b.rng.Float64())
		life := lifetime * (0.5 + b.rng.Float64()*0.5)
		b.particles = append(b.particles, Particle{
			X:           x,
			Y:           y,
			VX:          math.Cos(angle) * spd,
			VY:          math.Sin(angle) * spd,
			Lifetime:    life,
			MaxLifetime: life,
			Drag:        0.95,
		})
	}
}

// Update moves particles and drops the expired ones.
func (b *burst) Update(dt float64) {
	dragPow := dt * 60 // Normalize drag to ~60fps
	kept := b.particles[:0]
	for _, p := range b.particles {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}
		drag := math.Pow(p.Drag, dragPow)
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		kept = append(kept, p)
	}
	b.particles = kept
}

// Draw plots each particle that has not faded yet (< 25% lifetime).
func (b *burst) Draw(c *draw.Canvas, v view) {
	for _, p := range b.particles {
		if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
			continue
		}
		c.SetFloat(v.toLogical(p.X, p.Y))
	}
}

// Len returns the number of live particles.
func (b *burst) Len() int {
	return len(b.particles)
}
