// Package object defines the merge game's entities: the tier catalog and balls.
package object

import "github.com/tomz197/planetmerge/internal/physics"

// Phase is a ball's place in the fusion lifecycle.
type Phase int

const (
	PhaseFree    Phase = iota // Normal physics; may fuse
	PhaseFusing               // Consumed by a fusion; despawns when its timer runs out
	PhaseGrowing              // Fusion product scaling up; kinematic until released
)

func (p Phase) String() string {
	switch p {
	case PhaseFree:
		return "free"
	case PhaseFusing:
		return "fusing"
	case PhaseGrowing:
		return "growing"
	default:
		return "unknown"
	}
}

// Ball is a tiered ball. Its kinematic state lives in the physics body.
type Ball struct {
	Body  physics.BodyID // Identity and physics handle
	Tier  Tier
	Z     float64 // Draw order; higher draws on top
	Scale float64 // Current sprite size; below Tier scale while growing
	Phase Phase

	// Timer is the seconds remaining while Fusing and the seconds elapsed while Growing.
	Timer float64
}

// NewBall creates a free, full-size ball.
func NewBall(body physics.BodyID, tier Tier, z float64) *Ball {
	return &Ball{
		Body:  body,
		Tier:  tier,
		Z:     z,
		Scale: tier.Properties().Scale,
		Phase: PhaseFree,
	}
}

// NewGrowingBall creates a fusion product at zero scale.
func NewGrowingBall(body physics.BodyID, tier Tier, z float64) *Ball {
	return &Ball{
		Body:  body,
		Tier:  tier,
		Z:     z,
		Phase: PhaseGrowing,
	}
}

// IsFree reports whether the ball takes part in gravity, fusion and game-over checks.
func (b *Ball) IsFree() bool {
	return b.Phase == PhaseFree
}

// Radius returns the collider radius for the current scale.
func (b *Ball) Radius() float64 {
	return b.Scale * ColliderFactor
}

// StartFusing moves a free ball into the fusing phase.
// Returns false if the ball is already fusing.
func (b *Ball) StartFusing(duration float64) bool {
	if b.Phase == PhaseFusing {
		return false
	}
	b.Phase = PhaseFusing
	b.Timer = duration
	return true
}

// AdvanceFusing counts the fusion timer down. Returns true once it has run out.
func (b *Ball) AdvanceFusing(dt float64) (expired bool) {
	b.Timer -= dt
	return b.Timer <= 0
}

// AdvanceGrowing counts the growth timer up and interpolates the scale linearly
// from zero to the tier's full scale. Returns true on the tick the ball reaches
// full size, after which it is free.
func (b *Ball) AdvanceGrowing(dt, duration float64) (released bool) {
	full := b.Tier.Properties().Scale
	b.Timer = min(b.Timer+dt, duration)
	if b.Timer >= duration {
		b.Scale = full
		b.Phase = PhaseFree
		return true
	}
	b.Scale = full * b.Timer / duration
	return false
}
