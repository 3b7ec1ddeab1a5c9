package loop

import (
	"fmt"
	"strconv"

	"github.com/tomz197/planetmerge/internal/config"
	"github.com/tomz197/planetmerge/internal/draw"
	"github.com/tomz197/planetmerge/internal/game"
	"github.com/tomz197/planetmerge/internal/object"
)

// gameOverBanner is shown while the match is over.
const gameOverBanner = "Game Over press R to restart"

// controlsHelp is shown at the bottom of the board.
const controlsHelp = "A/D rotate  SPACE drop  R restart  Q quit"

// view maps world units to logical canvas units. World Y points up.
type view struct {
	cx, cy float64
	scale  float64 // Logical units per world unit
}

func newView(cfg config.Game) view {
	return view{
		cx:    cfg.BoardCenterX,
		cy:    cfg.BoardCenterY,
		scale: config.ViewSize / (2 * config.BoardHalfExtent),
	}
}

// toLogical converts a world position to logical canvas coordinates.
func (v view) toLogical(x, y float64) (lx, ly float64) {
	return (x-v.cx)*v.scale + config.ViewSize/2, config.ViewSize/2 - (y-v.cy)*v.scale
}

// length converts a world distance to logical units.
func (v view) length(d float64) float64 {
	return d * v.scale
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area. The board is square, and a cell holds
// two vertical pixels, so the width is kept at twice the height.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderHeight = min(termHeight, config.MaxTermHeight)
	renderWidth = min(termWidth, config.MaxTermWidth, 2*renderHeight)
	renderHeight = min(renderHeight, (renderWidth+1)/2)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// tierLabel is the text drawn on a ball.
func tierLabel(t object.Tier) string {
	return strconv.Itoa(int(t) + 1)
}

// drawBoard draws the game-over ring, the balls and the cursor to the canvas.
func drawBoard(c *draw.Canvas, v view, cfg config.Game, balls []game.BallView, cursorX, cursorY float64, cur object.Tier) {
	cx, cy := v.toLogical(cfg.BoardCenterX, cfg.BoardCenterY)
	c.DrawCircle(cx, cy, v.length(cfg.GameOverDistance))

	for _, b := range balls {
		x, y := v.toLogical(b.X, b.Y)
		r := v.length(b.Radius)
		if b.Phase == object.PhaseFusing {
			c.DrawCircle(x, y, r)
			continue
		}
		c.FillCircle(x, y, r)
	}

	x, y := v.toLogical(cursorX, cursorY)
	c.DrawCircle(x, y, v.length(cur.Radius()))
}

// drawLabels writes tier numbers over free balls.
func drawLabels(fw *draw.FrameWriter, c *draw.Canvas, v view, balls []game.BallView) {
	for _, b := range balls {
		if b.Phase != object.PhaseFree {
			continue
		}
		col, row := c.LogicalToTerminal(v.toLogical(b.X, b.Y))
		if col < 1 || row < 1 || col > c.TerminalWidth() || row > c.TerminalHeight() {
			continue
		}
		fw.Text(col, row, tierLabel(b.Tier))
	}
}

// drawHUD writes the score, best score, on-deck tier and the game-over banner.
func drawHUD(fw *draw.FrameWriter, c *draw.Canvas, g *game.Game, bannerVisible bool) {
	width, height := c.TerminalWidth(), c.TerminalHeight()

	fw.Text(2, 1, g.ScoreText())
	best := g.BestText()
	fw.Text(max(width-len(best), 1), 1, best)

	cur := g.Cursor()
	fw.Text(2, height, fmt.Sprintf("Drop: %s  Next: %s", cur.Current, cur.Next))
	if width >= len(controlsHelp)+30 {
		fw.Text(width-len(controlsHelp), height, controlsHelp)
	}

	if bannerVisible {
		fw.Centered(width, height/2, gameOverBanner)
	}
}
