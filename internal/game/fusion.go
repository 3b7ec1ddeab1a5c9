package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/planetmerge/internal/object"
	"github.com/tomz197/planetmerge/internal/physics"
)

// ErrFusionInvariant reports a ball that was consumed by two fusions in one pass.
var ErrFusionInvariant = errors.New("ball fused twice")

// resolveFusions turns every newly touching pair of equal free balls into one
// growing ball of the next tier. A ball takes part in at most one fusion per pass.
func (g *Game) resolveFusions(pairs []physics.Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	fused := make(map[physics.BodyID]struct{})

	for _, p := range pairs {
		if _, ok := fused[p.A]; ok {
			continue
		}
		if _, ok := fused[p.B]; ok {
			continue
		}
		a, okA := g.byBody[p.A]
		b, okB := g.byBody[p.B]
		if !okA || !okB || !a.IsFree() || !b.IsFree() || a.Tier != b.Tier {
			continue
		}
		bodyA, okA := g.engine.Body(a.Body)
		bodyB, okB := g.engine.Body(b.Body)
		if !okA || !okB {
			continue
		}

		fused[p.A] = struct{}{}
		fused[p.B] = struct{}{}
		if err := g.fuse(a, b, bodyA, bodyB); err != nil {
			return err
		}
	}
	return nil
}

// fuse starts the fusion of two equal balls.
func (g *Game) fuse(a, b *object.Ball, bodyA, bodyB *physics.Body) error {
	for _, parent := range []*object.Ball{a, b} {
		if parent.Phase == object.PhaseFusing {
			return fmt.Errorf("%w: body %d", ErrFusionInvariant, parent.Body)
		}
	}
	a.StartFusing(g.cfg.FusionDuration)
	b.StartFusing(g.cfg.FusionDuration)

	mx, my := physics.Midpoint(bodyA.X, bodyA.Y, bodyB.X, bodyB.Y)
	g.separate(a.Body, bodyA, mx, my)
	g.separate(b.Body, bodyB, mx, my)

	next := a.Tier.Next()
	g.addBall(object.NewGrowingBall(0, next, math.Max(a.Z, b.Z)+g.cfg.ZBias), mx, my)

	g.ledger.Add(next.Properties().Score)
	g.emit(Event{Kind: EventFused, Tier: next, X: mx, Y: my})
	g.logger.Debug("fuse", "tier", a.Tier, "into", next, "x", mx, "y", my)
	return nil
}

// separate makes a fusing parent kinematic and moves it away from the midpoint.
func (g *Game) separate(id physics.BodyID, body *physics.Body, mx, my float64) {
	g.engine.SetType(id, physics.BodyKinematic)
	body.VX, body.VY = 0, 0
	dist := physics.Distance(mx, my, body.X, body.Y)
	if dist == 0 {
		return
	}
	body.VX = (body.X - mx) / dist * g.cfg.FusionSeparationSpeed
	body.VY = (body.Y - my) / dist * g.cfg.FusionSeparationSpeed
}

// advanceFusions counts fusing and growing timers. Expired fusing balls are
// removed with their bodies; grown balls are released to the dynamic simulation.
func (g *Game) advanceFusions(dt float64) {
	expired := false
	for _, b := range g.balls {
		switch b.Phase {
		case object.PhaseFusing:
			if b.AdvanceFusing(dt) {
				expired = true
			}
		case object.PhaseGrowing:
			released := b.AdvanceGrowing(dt, g.cfg.FusionDuration)
			if body, ok := g.engine.Body(b.Body); ok {
				body.Radius = b.Radius()
			}
			if released {
				g.engine.SetType(b.Body, physics.BodyDynamic)
			}
		}
	}
	if expired {
		g.removeBalls(func(b *object.Ball) bool {
			return b.Phase == object.PhaseFusing && b.Timer <= 0
		})
	}
}
