package score

import (
	"math"
	"testing"
)

func TestAddAccumulates(t *testing.T) {
	l := NewLedger(0)
	for _, p := range []uint64{1, 2, 4, 16} {
		l.Add(p)
	}
	if l.Score() != 23 {
		t.Fatalf("Score = %d, want 23", l.Score())
	}
}

func TestAddSaturates(t *testing.T) {
	l := NewLedger(0)
	l.Add(math.MaxUint64 - 1)
	l.Add(5)
	if l.Score() != math.MaxUint64 {
		t.Fatalf("Score = %d, want saturation at MaxUint64", l.Score())
	}
}

func TestBestOnlyChangesOnCommit(t *testing.T) {
	l := NewLedger(900)
	l.Add(1200)
	if l.Best() != 900 {
		t.Fatalf("Best changed during play: %d", l.Best())
	}
	if !l.CommitBest() {
		t.Fatal("CommitBest should report an improvement")
	}
	if l.Best() != 1200 {
		t.Fatalf("Best = %d, want 1200", l.Best())
	}
}

func TestCommitBestKeepsHigherBest(t *testing.T) {
	l := NewLedger(900)
	l.Add(900)
	if l.CommitBest() {
		t.Fatal("an equal score is not an improvement")
	}
	l.ResetRound()
	l.Add(10)
	l.CommitBest()
	if l.Best() != 900 {
		t.Fatalf("Best = %d, want 900", l.Best())
	}
}

func TestDisplayText(t *testing.T) {
	l := NewLedger(7)
	l.Add(42)
	if got := l.ScoreText(); got != "Score : 42" {
		t.Errorf("ScoreText = %q", got)
	}
	if got := l.BestText(); got != "Best : 7" {
		t.Errorf("BestText = %q", got)
	}
	l.ResetRound()
	if got := l.ScoreText(); got != "Score : 0" {
		t.Errorf("ScoreText after reset = %q", got)
	}
}
