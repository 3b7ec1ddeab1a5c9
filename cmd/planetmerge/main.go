package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/planetmerge/internal/config"
	"github.com/tomz197/planetmerge/internal/game"
	"github.com/tomz197/planetmerge/internal/loop"
	"github.com/tomz197/planetmerge/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "planetmerge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog()
	for _, w := range settings.Warnings {
		logger.Warn("config", "msg", w)
	}

	ctx := context.Background()
	best, err := openStore(ctx, settings.BestScoreDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := best.Close(); err != nil {
			logger.Warn("close best score store", "err", err)
		}
	}()

	g := game.New(ctx, settings.Game, game.WithLogger(logger), game.WithStore(best))
	logger.Info("match started", "best", g.Best(), "store", settings.BestScoreDB)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, g, loop.Options{
		Game:   settings.Game,
		Logger: logger,
		FPS:    settings.FPS,
	}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// newLogger writes to the configured log file. The terminal is in raw mode
// while playing, so without a file logs are discarded.
func newLogger(s config.Settings) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.EnvLogLevel, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "planetmerge",
	})
	return logger, closeFn, nil
}

// openStore picks SQLite when a database path is configured and memory otherwise.
func openStore(ctx context.Context, path string) (store.BestScores, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	return store.OpenSQLite(ctx, path)
}
