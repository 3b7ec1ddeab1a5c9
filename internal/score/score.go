// Package score keeps the round score and the best score across rounds.
package score

import (
	"fmt"
	"math"
)

// Ledger accumulates the current round's score and remembers the best one.
// The best score only changes through CommitBest.
type Ledger struct {
	score uint64
	best  uint64
}

// NewLedger creates a ledger with a previously recorded best score.
func NewLedger(best uint64) *Ledger {
	return &Ledger{best: best}
}

// Add adds points to the round score, saturating at the largest uint64.
func (l *Ledger) Add(points uint64) {
	if points > math.MaxUint64-l.score {
		l.score = math.MaxUint64
		return
	}
	l.score += points
}

// ResetRound sets the round score back to zero.
func (l *Ledger) ResetRound() {
	l.score = 0
}

// CommitBest records the round score as best if it beats it. Returns true on improvement.
func (l *Ledger) CommitBest() bool {
	if l.score <= l.best {
		return false
	}
	l.best = l.score
	return true
}

// Score returns the current round score.
func (l *Ledger) Score() uint64 {
	return l.score
}

// Best returns the best committed score.
func (l *Ledger) Best() uint64 {
	return l.best
}

// ScoreText formats the round score for display.
func (l *Ledger) ScoreText() string {
	return fmt.Sprintf("Score : %d", l.score)
}

// BestText formats the best score for display.
func (l *Ledger) BestText() string {
	return fmt.Sprintf("Best : %d", l.best)
}
