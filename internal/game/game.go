// Package game runs one match of the merge puzzle: spawning, gravity, fusion,
// scoring and the game-over state machine, advanced by Tick.
package game

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetmerge/internal/config"
	"github.com/tomz197/planetmerge/internal/object"
	"github.com/tomz197/planetmerge/internal/physics"
	"github.com/tomz197/planetmerge/internal/score"
	"github.com/tomz197/planetmerge/internal/store"
)

// storeTimeout bounds each best-score store call.
const storeTimeout = 2 * time.Second

// Engine is the physics collaborator. *physics.World implements it.
type Engine interface {
	Add(b physics.Body) physics.BodyID
	Remove(id physics.BodyID)
	Clear()
	Body(id physics.BodyID) (*physics.Body, bool)
	SetType(id physics.BodyID, t physics.BodyType)
	Step(dt float64)
	CollisionsStarted() []physics.Pair
}

// MatchState is the match state machine.
type MatchState int

const (
	StatePlaying  MatchState = iota // Spawning and game-over checks active
	StateGameOver                   // Waiting for a restart
)

func (s MatchState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Actions is the player input for one tick.
type Actions struct {
	Confirm          bool    // Drop the current ball (edge-triggered)
	Restart          bool    // Restart after game over (edge-triggered)
	CursorX, CursorY float64 // Drop position in world units
}

// Cursor holds the ball about to be dropped and the one on deck.
type Cursor struct {
	Current object.Tier
	Next    object.Tier
}

// Game is the state of one match. Not safe for concurrent use.
type Game struct {
	cfg    config.Game
	engine Engine
	rng    *rand.Rand
	logger *log.Logger
	store  store.BestScores

	balls  []*object.Ball // Insertion order
	byBody map[physics.BodyID]*object.Ball

	cursor   Cursor
	cooldown float64 // Seconds until the next drop is allowed
	ledger   *score.Ledger
	state    MatchState

	events    []Event
	published uint64 // Last score announced with EventScoreChanged
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithStore sets where the best score is loaded from and saved to.
func WithStore(s store.BestScores) Option {
	return func(g *Game) { g.store = s }
}

// WithRand sets the random source for cursor tiers.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithEngine replaces the default physics world.
func WithEngine(e Engine) Option {
	return func(g *Game) { g.engine = e }
}

// New creates a match in the Playing state. The best score is loaded from the
// store; a failing store is logged and play starts from zero.
func New(ctx context.Context, cfg config.Game, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		byBody: make(map[physics.BodyID]*object.Ball),
		state:  StatePlaying,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.store == nil {
		g.store = store.NewMemory()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.engine == nil {
		g.engine = physics.NewWorld(physics.WorldOptions{
			CenterX:       cfg.BoardCenterX,
			CenterY:       cfg.BoardCenterY,
			HalfExtent:    config.BoardHalfExtent,
			CellSize:      2 * object.MaxRadius(),
			LinearDamping: cfg.LinearDamping,
		})
	}

	var best uint64
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if b, err := g.store.LoadBest(sctx); err != nil {
		g.logger.Warn("load best score", "err", err)
	} else {
		best = b
	}
	g.ledger = score.NewLedger(best)

	g.rollCursor()
	return g
}

// State returns the match state.
func (g *Game) State() MatchState {
	return g.state
}

// Score returns the current round score.
func (g *Game) Score() uint64 {
	return g.ledger.Score()
}

// Best returns the best committed score.
func (g *Game) Best() uint64 {
	return g.ledger.Best()
}

// ScoreText returns the score display string.
func (g *Game) ScoreText() string {
	return g.ledger.ScoreText()
}

// BestText returns the best score display string.
func (g *Game) BestText() string {
	return g.ledger.BestText()
}

// Cursor returns the current and on-deck tiers.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// Cooldown returns the seconds left before the next drop is allowed.
func (g *Game) Cooldown() float64 {
	return max(g.cooldown, 0)
}

// BallView is a read-only snapshot of a ball for presentation.
type BallView struct {
	X, Y   float64
	Radius float64 // Collider radius
	Scale  float64
	Tier   object.Tier
	Visual string
	Z      float64
	Phase  object.Phase
}

// Balls returns a snapshot of every ball in insertion order.
func (g *Game) Balls() []BallView {
	views := make([]BallView, 0, len(g.balls))
	for _, b := range g.balls {
		body, ok := g.engine.Body(b.Body)
		if !ok {
			continue
		}
		views = append(views, BallView{
			X:      body.X,
			Y:      body.Y,
			Radius: b.Radius(),
			Scale:  b.Scale,
			Tier:   b.Tier,
			Visual: b.Tier.Properties().Visual,
			Z:      b.Z,
			Phase:  b.Phase,
		})
	}
	return views
}

// addBall creates a ball with a body at (x, y). Free balls get a dynamic body,
// growing ones a kinematic body.
func (g *Game) addBall(ball *object.Ball, x, y float64) *object.Ball {
	bodyType := physics.BodyDynamic
	if !ball.IsFree() {
		bodyType = physics.BodyKinematic
	}
	ball.Body = g.engine.Add(physics.Body{
		Type:   bodyType,
		X:      x,
		Y:      y,
		Radius: ball.Radius(),
		Mass:   ball.Tier.Properties().Scale,
	})
	g.balls = append(g.balls, ball)
	g.byBody[ball.Body] = ball
	return ball
}

// removeBalls drops every ball for which remove returns true, with its body.
func (g *Game) removeBalls(remove func(*object.Ball) bool) {
	kept := g.balls[:0]
	for _, b := range g.balls {
		if remove(b) {
			g.engine.Remove(b.Body)
			delete(g.byBody, b.Body)
			continue
		}
		kept = append(kept, b)
	}
	clear(g.balls[len(kept):])
	g.balls = kept
}

// rollCursor draws fresh current and on-deck tiers.
func (g *Game) rollCursor() {
	g.cursor = Cursor{
		Current: object.RandomSpawnTier(g.rng),
		Next:    object.RandomSpawnTier(g.rng),
	}
}
