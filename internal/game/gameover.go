package game

import (
	"context"

	"github.com/tomz197/planetmerge/internal/physics"
)

// checkGameOver ends the match when a free ball has drifted past the
// game-over distance. Only the first violation counts.
func (g *Game) checkGameOver() {
	if g.state != StatePlaying {
		return
	}
	for _, b := range g.balls {
		if !b.IsFree() {
			continue
		}
		body, ok := g.engine.Body(b.Body)
		if !ok {
			continue
		}
		d := physics.Distance(g.cfg.BoardCenterX, g.cfg.BoardCenterY, body.X, body.Y)
		if d > g.cfg.GameOverDistance {
			g.state = StateGameOver
			g.emit(Event{Kind: EventGameOver, Value: g.ledger.Score()})
			g.logger.Info("game over", "score", g.ledger.Score(), "distance", d, "tier", b.Tier)
			return
		}
	}
}

// Restart clears the board and starts a new round. It only has an effect after
// game over. An improved best score is saved to the store.
func (g *Game) Restart() bool {
	if g.state != StateGameOver {
		return false
	}

	g.engine.Clear()
	clear(g.balls)
	g.balls = g.balls[:0]
	clear(g.byBody)
	g.cooldown = 0
	g.emit(Event{Kind: EventRestarted})

	if g.ledger.CommitBest() {
		best := g.ledger.Best()
		g.emit(Event{Kind: EventBestChanged, Value: best})
		g.saveBest(best)
	}
	g.ledger.ResetRound()

	g.rollCursor()
	g.state = StatePlaying
	g.logger.Info("restart", "best", g.ledger.Best())
	return true
}

// saveBest persists best. Failures are logged and never interrupt play.
func (g *Game) saveBest(best uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := g.store.SaveBest(ctx, best); err != nil {
		g.logger.Warn("save best score", "best", best, "err", err)
	}
}
