// Package store persists the best score between process runs.
package store

import (
	"context"
	"sync"
)

// BestScores loads and saves the single best-score value.
type BestScores interface {
	LoadBest(ctx context.Context) (uint64, error)
	SaveBest(ctx context.Context, best uint64) error
	Close() error
}

// Memory keeps the best score for the life of the process only.
type Memory struct {
	mu   sync.Mutex
	best uint64
}

// Compile-time check that Memory implements BestScores.
var _ BestScores = (*Memory)(nil)

// NewMemory creates an in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadBest returns the stored best score.
func (m *Memory) LoadBest(context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBest stores best.
func (m *Memory) SaveBest(_ context.Context, best uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
