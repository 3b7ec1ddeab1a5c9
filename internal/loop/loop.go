// Package loop drives a match in the terminal: it reads keys, ticks the game at
// a fixed frame rate and draws the board.
package loop

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetmerge/internal/config"
	"github.com/tomz197/planetmerge/internal/draw"
	"github.com/tomz197/planetmerge/internal/game"
	"github.com/tomz197/planetmerge/internal/input"
)

// Fusion sparks
const (
	sparkCount    = 12
	sparkSpeed    = 120.0 // World units per second
	sparkLifetime = 0.4   // Seconds
)

// Options configures Run.
type Options struct {
	Game         config.Game       // Tunables the match was created with
	Logger       *log.Logger       // Defaults to discarding
	FPS          int               // Defaults to config.TargetFPS
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
}

// driver holds the per-terminal state around a match.
type driver struct {
	game    *game.Game
	cfg     config.Game
	logger  *log.Logger
	stream  *input.Stream
	orbit   *Orbit
	view    view
	sparks  *burst
	banner  bool
	running bool

	w            io.Writer
	canvas       *draw.Canvas
	frame        *draw.FrameWriter
	termSizeFunc draw.TermSizeFunc
}

// Run plays g until the player quits or the input closes, using the standard
// Input → Update → Draw cycle.
func Run(r *bufio.Reader, w io.Writer, g *game.Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewSize, config.ViewSize)
	canvas.SetOffset(offsetCol, offsetRow)

	d := &driver{
		game:         g,
		cfg:          opts.Game,
		logger:       opts.Logger,
		stream:       input.StartStream(r),
		orbit:        NewOrbit(),
		view:         newView(opts.Game),
		sparks:       newBurst(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		running:      true,
		w:            w,
		canvas:       canvas,
		frame:        draw.NewFrameWriter(w, offsetCol, offsetRow),
		termSizeFunc: opts.TermSizeFunc,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	frameTime := config.FrameTime(opts.FPS)
	lastTime := time.Now()
	for d.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT + UPDATE PHASE =====
		if err := d.update(dt); err != nil {
			return err
		}
		d.updateScreen()

		// ===== DRAW PHASE =====
		if err := d.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// update reads the frame's keys, ticks the match and consumes its events.
func (d *driver) update(dt float64) error {
	in := input.ReadInput(d.stream)
	if in.Quit {
		d.running = false
	}

	d.orbit.Rotate(in.Left, in.Right, dt, d.cfg.CursorSpeed)
	x, y := d.orbit.Position(d.cfg)

	err := d.game.Tick(dt, game.Actions{
		Confirm: in.Drop,
		Restart: in.Restart,
		CursorX: x,
		CursorY: y,
	})
	if errors.Is(err, game.ErrFusionInvariant) {
		d.logger.Error("fusion", "err", err)
	}
	if err != nil {
		return err
	}

	d.sparks.Update(dt)
	for _, e := range d.game.DrainEvents() {
		switch e.Kind {
		case game.EventGameOver:
			d.banner = true
		case game.EventRestarted:
			d.banner = false
		case game.EventFused:
			d.sparks.Spawn(e.X, e.Y, sparkCount, sparkSpeed, sparkLifetime)
		}
		d.logger.Debug("event", "kind", e.Kind, "tier", e.Tier, "value", e.Value)
	}
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (d *driver) updateScreen() {
	termWidth, termHeight, err := d.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	d.canvas.Resize(renderWidth, renderHeight)
	d.canvas.SetOffset(offsetCol, offsetRow)
	d.frame.SetOrigin(offsetCol, offsetRow)
}

// drawFrame clears the screen and draws the board with its overlays.
func (d *driver) drawFrame() error {
	draw.ClearScreen(d.frame)
	d.canvas.Clear()

	balls := d.game.Balls()
	x, y := d.orbit.Position(d.cfg)
	drawBoard(d.canvas, d.view, d.cfg, balls, x, y, d.game.Cursor().Current)
	d.sparks.Draw(d.canvas, d.view)

	if err := d.canvas.Render(d.frame); err != nil {
		return err
	}
	if err := d.canvas.RenderBorder(d.frame); err != nil {
		return err
	}

	// Text goes after the canvas so it is drawn on top
	drawLabels(d.frame, d.canvas, d.view, balls)
	drawHUD(d.frame, d.canvas, d.game, d.banner)

	return d.frame.Flush()
}
