package game

import "github.com/tomz197/planetmerge/internal/object"

// advanceCooldown counts the drop cooldown down.
func (g *Game) advanceCooldown(dt float64) {
	if g.cooldown > 0 {
		g.cooldown -= dt
	}
}

// TrySpawn drops the cursor's current tier at (x, y) when confirm is set, the
// match is playing and the cooldown has run out. Otherwise it does nothing.
func (g *Game) TrySpawn(confirm bool, x, y float64) (*object.Ball, bool) {
	if !confirm || g.state != StatePlaying || g.cooldown > 0 {
		return nil, false
	}

	tier := g.cursor.Current
	ball := g.addBall(object.NewBall(0, tier, 0), x, y)
	g.cooldown = g.cfg.SpawnCooldown

	g.cursor.Current = g.cursor.Next
	g.cursor.Next = object.RandomSpawnTier(g.rng)

	g.ledger.Add(tier.Properties().Score)
	g.emit(Event{Kind: EventSpawned, Tier: tier, X: x, Y: y})
	g.logger.Debug("spawn", "tier", tier, "x", x, "y", y)
	return ball, true
}
