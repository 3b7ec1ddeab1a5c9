package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// ViewSize is the side of the square board in logical canvas units.
// Actual rendering scales to fit terminal size.
const ViewSize = 100

// Max render resolution in terminal cells. Larger terminals get a centered board.
// A cell is about twice as tall as wide, so the square board uses twice as many
// columns as rows.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 60
)

// Frame timing
const (
	TargetFPS = 60
	MaxFPS    = 240
)

// FrameTime returns the frame budget for fps frames per second.
func FrameTime(fps int) time.Duration {
	if fps < 1 {
		fps = TargetFPS
	}
	return time.Second / time.Duration(fps)
}

// BoardHalfExtent is half the side of the board square in world units.
const BoardHalfExtent = 450.0

// Game holds every tunable of the simulation core.
type Game struct {
	BoardCenterX          float64 // Gravity target and game-over origin
	BoardCenterY          float64
	GameOverDistance      float64 // A Free ball further than this ends the match
	GravityStrength       float64 // Pull toward the center, per second squared per unit of distance
	LinearDamping         float64 // Per-second velocity damping applied by the physics world
	SpawnCooldown         float64 // Seconds between drops
	FusionDuration        float64 // Seconds for both the fuse and the grow animation
	FusionSeparationSpeed float64 // Speed of fusing parents moving away from their midpoint
	ZBias                 float64 // Draw-order lift of a fusion product over its parents
	CursorOrbit           float64 // Distance from center where balls are dropped
	CursorSpeed           float64 // Cursor rotation speed in radians per second
}

// DefaultGame returns the stock tunables.
func DefaultGame() Game {
	return Game{
		GameOverDistance:      400,
		GravityStrength:       60,
		LinearDamping:         20,
		SpawnCooldown:         0.5,
		FusionDuration:        0.15,
		FusionSeparationSpeed: 60,
		ZBias:                 1,
		CursorOrbit:           350,
		CursorSpeed:           2.5,
	}
}

// Settings is everything the entrypoint needs to start a match.
type Settings struct {
	Game        Game
	BestScoreDB string // SQLite path for best score persistence; empty keeps it in memory
	LogFile     string // Log destination; empty discards logs (the terminal is in raw mode)
	LogLevel    string
	FPS         int // Frames per second of the terminal driver

	// Warnings collects malformed or out-of-range values that were replaced by defaults.
	Warnings []string
}

// Environment variable names.
const (
	EnvGameOverDistance = "PLANETMERGE_GAME_OVER_DISTANCE"
	EnvGravityStrength  = "PLANETMERGE_GRAVITY"
	EnvLinearDamping    = "PLANETMERGE_DAMPING"
	EnvSpawnCooldown    = "PLANETMERGE_SPAWN_COOLDOWN"
	EnvFusionDuration   = "PLANETMERGE_FUSION_DURATION"
	EnvCursorOrbit      = "PLANETMERGE_CURSOR_ORBIT"
	EnvCursorSpeed      = "PLANETMERGE_CURSOR_SPEED"
	EnvFPS              = "PLANETMERGE_FPS"
	EnvBestScoreDB      = "PLANETMERGE_BEST_DB"
	EnvLogFile          = "PLANETMERGE_LOG_FILE"
	EnvLogLevel         = "PLANETMERGE_LOG_LEVEL"
)

// Load reads the optional dotenv files (".env" when none are given) and builds Settings
// from the environment. A missing dotenv file is not an error.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds Settings from PLANETMERGE_* variables over DefaultGame.
func FromEnv() Settings {
	s := Settings{
		Game:        DefaultGame(),
		BestScoreDB: GetEnv(EnvBestScoreDB, ""),
		LogFile:     GetEnv(EnvLogFile, ""),
		LogLevel:    GetEnv(EnvLogLevel, "info"),
		FPS:         TargetFPS,
	}

	s.positive(EnvGameOverDistance, &s.Game.GameOverDistance)
	s.positive(EnvGravityStrength, &s.Game.GravityStrength)
	s.nonNegative(EnvLinearDamping, &s.Game.LinearDamping)
	s.nonNegative(EnvSpawnCooldown, &s.Game.SpawnCooldown)
	s.positive(EnvFusionDuration, &s.Game.FusionDuration)
	s.positive(EnvCursorOrbit, &s.Game.CursorOrbit)
	s.positive(EnvCursorSpeed, &s.Game.CursorSpeed)

	fps, err := GetEnvInt(EnvFPS, TargetFPS)
	switch {
	case err != nil:
		s.Warnings = append(s.Warnings, err.Error())
	case fps < 1 || fps > MaxFPS:
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s=%d out of range, using %d", EnvFPS, fps, TargetFPS))
	default:
		s.FPS = fps
	}

	return s
}

func (s *Settings) positive(key string, dst *float64) {
	s.float(key, dst, func(v float64) bool { return v > 0 })
}

func (s *Settings) nonNegative(key string, dst *float64) {
	s.float(key, dst, func(v float64) bool { return v >= 0 })
}

func (s *Settings) float(key string, dst *float64, valid func(float64) bool) {
	v, err := GetEnvFloat(key, *dst)
	if err != nil {
		s.Warnings = append(s.Warnings, err.Error())
		return
	}
	if !valid(v) {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s=%v out of range, using %v", key, v, *dst))
		return
	}
	*dst = v
}
