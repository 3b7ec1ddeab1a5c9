package game

// applyGravity pulls every free ball toward the board center. The pull grows
// linearly with distance and ignores mass; the engine's damping caps the speed.
func (g *Game) applyGravity(dt float64) {
	k := g.cfg.GravityStrength * dt
	for _, b := range g.balls {
		if !b.IsFree() {
			continue
		}
		body, ok := g.engine.Body(b.Body)
		if !ok {
			continue
		}
		body.VX += (g.cfg.BoardCenterX - body.X) * k
		body.VY += (g.cfg.BoardCenterY - body.Y) * k
	}
}
