package loop

import (
	"bufio"
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tomz197/planetmerge/internal/config"
	"github.com/tomz197/planetmerge/internal/game"
)

func TestOrbitRotation(t *testing.T) {
	cfg := config.DefaultGame()
	o := NewOrbit()

	x, y := o.Position(cfg)
	if math.Abs(x) > 1e-9 || math.Abs(y-cfg.CursorOrbit) > 1e-9 {
		t.Fatalf("start position = (%v, %v), want top of orbit", x, y)
	}

	o.Rotate(true, false, 1, math.Pi/2)
	x, y = o.Position(cfg)
	if math.Abs(x+cfg.CursorOrbit) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("after left turn = (%v, %v), want left of center", x, y)
	}

	o.Rotate(true, true, 1, math.Pi/2)
	if math.Abs(o.Angle-math.Pi) > 1e-9 {
		t.Fatalf("both keys held moved the cursor to %v", o.Angle)
	}

	o.Rotate(false, true, 4, math.Pi/2)
	if o.Angle < 0 || o.Angle >= 2*math.Pi {
		t.Fatalf("angle %v not normalized", o.Angle)
	}
}

func TestViewMapping(t *testing.T) {
	v := newView(config.DefaultGame())
	lx, ly := v.toLogical(0, 0)
	if math.Abs(lx-config.ViewSize/2) > 1e-9 || math.Abs(ly-config.ViewSize/2) > 1e-9 {
		t.Errorf("center maps to (%v, %v)", lx, ly)
	}
	lx, ly = v.toLogical(config.BoardHalfExtent, config.BoardHalfExtent)
	if math.Abs(lx-config.ViewSize) > 1e-9 || math.Abs(ly) > 1e-9 {
		t.Errorf("top-right corner maps to (%v, %v), want (%v, 0)", lx, ly, float64(config.ViewSize))
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		wantW, wantH         int
		wantOffCol, wantOffR int
	}{
		{"wide terminal", 200, 40, 80, 40, 60, 0},
		{"tall terminal", 60, 50, 60, 30, 0, 10},
		{"huge terminal", 300, 100, 120, 60, 90, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := clampTermSize(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffR {
				t.Fatalf("got %d x %d at (%d, %d), want %d x %d at (%d, %d)",
					w, h, oc, or, tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffR)
			}
		})
	}
}

func TestRunQuitsOnInputClose(t *testing.T) {
	cfg := config.DefaultGame()
	g := game.New(context.Background(), cfg)

	var out bytes.Buffer
	err := Run(bufio.NewReader(strings.NewReader("")), &out, g, Options{
		Game:         cfg,
		TermSizeFunc: func() (int, int, error) { return 80, 40, nil },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Score : 0") {
		t.Errorf("frame output is missing the score line")
	}
}

func TestBurstExpires(t *testing.T) {
	b := newBurst(rand.New(rand.NewPCG(3, 4)))
	b.Spawn(10, 20, 8, 100, 0.4)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}

	b.Update(0.1)
	moved := false
	for _, p := range b.particles {
		if p.X != 10 || p.Y != 20 {
			moved = true
		}
	}
	if !moved {
		t.Error("particles did not move")
	}

	b.Update(0.5)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after lifetime, want 0", b.Len())
	}
}
