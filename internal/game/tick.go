package game

// maxStep caps the time integrated by one physics step. Longer frames would
// fling resting balls past the game-over distance.
const maxStep = 1.0 / 20

// Tick advances the match by dt seconds. The steps run in a fixed order: drop
// cooldown, restart, spawn, gravity, physics, fusion, fusion timers, score
// publication and the game-over check. Gravity and physics advance by at most
// maxStep; the cooldown and fusion timers advance by the full dt.
//
// The only error is ErrFusionInvariant, which indicates a logic defect.
func (g *Game) Tick(dt float64, in Actions) error {
	if dt < 0 {
		dt = 0
	}

	g.advanceCooldown(dt)
	if in.Restart {
		g.Restart()
	}
	g.TrySpawn(in.Confirm, in.CursorX, in.CursorY)

	step := min(dt, maxStep)
	g.applyGravity(step)
	g.engine.Step(step)
	if err := g.resolveFusions(g.engine.CollisionsStarted()); err != nil {
		return err
	}
	g.advanceFusions(dt)

	g.publishScore()
	g.checkGameOver()
	return nil
}

// publishScore announces the score when it changed since the last tick.
func (g *Game) publishScore() {
	if s := g.ledger.Score(); s != g.published {
		g.published = s
		g.emit(Event{Kind: EventScoreChanged, Value: s})
	}
}
