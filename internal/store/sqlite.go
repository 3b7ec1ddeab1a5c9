package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	_ "modernc.org/sqlite"
)

// SQLite keeps the best score in a single-row table of a SQLite database file.
type SQLite struct {
	conn *sql.DB
}

// Compile-time check that SQLite implements BestScores.
var _ BestScores = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and migrates it.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open best score db: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &SQLite{conn: conn}
	if err := s.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the table if it doesn't exist.
func (s *SQLite) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS best_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate best score db: %w", err)
	}
	return nil
}

// LoadBest returns the stored best score, or 0 when none was saved yet.
func (s *SQLite) LoadBest(ctx context.Context) (uint64, error) {
	var score int64
	err := s.conn.QueryRowContext(ctx, "SELECT score FROM best_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if score < 0 {
		return 0, nil
	}
	return uint64(score), nil
}

// SaveBest upserts the best score. SQLite integers are signed, so values past
// MaxInt64 are stored as MaxInt64.
func (s *SQLite) SaveBest(ctx context.Context, best uint64) error {
	v := int64(math.MaxInt64)
	if best < math.MaxInt64 {
		v = int64(best)
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO best_score (id, score) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		v,
	)
	if err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}
