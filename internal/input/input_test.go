package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestDropIsEdgeTriggered(t *testing.T) {
	s := &Stream{}
	now := time.Unix(1000, 0)

	if in := s.apply([]byte(" "), now); !in.Drop {
		t.Fatal("first space should drop")
	}
	// Key repeat within the hold window keeps the key held, not pressed again
	if in := s.apply([]byte(" "), now.Add(10*time.Millisecond)); in.Drop {
		t.Fatal("repeat within hold window should not drop again")
	}
	if in := s.apply(nil, now.Add(100*time.Millisecond)); in.Drop {
		t.Fatal("no bytes should not drop")
	}
	if in := s.apply([]byte("\r"), now.Add(200*time.Millisecond)); !in.Drop {
		t.Fatal("enter after release should drop")
	}
}

func TestHeldSpaceDropsOnce(t *testing.T) {
	s := &Stream{}
	start := time.Unix(1000, 0)

	// First byte, the terminal's initial repeat delay, then repeats 33-34 ms apart
	offsets := []time.Duration{0, 500, 533, 566, 600, 633, 666, 700}
	drops := 0
	for _, off := range offsets {
		if s.apply([]byte(" "), start.Add(off*time.Millisecond)).Drop {
			drops++
		}
	}
	if drops != 1 {
		t.Fatalf("holding space dropped %d times, want 1", drops)
	}

	// Released after the last repeat, pressed again
	if !s.apply([]byte(" "), start.Add(900*time.Millisecond)).Drop {
		t.Fatal("press after release should drop")
	}
}

func TestSlowRepeatStaysHeld(t *testing.T) {
	s := &Stream{}
	start := time.Unix(1000, 0)
	s.apply([]byte("r"), start)
	for i := 1; i <= 10; i++ {
		if s.apply([]byte("r"), start.Add(time.Duration(400+40*i)*time.Millisecond)).Restart {
			t.Fatalf("repeat %d restarted", i)
		}
	}
}

func TestSeparateTapsBothDrop(t *testing.T) {
	s := &Stream{}
	start := time.Unix(1000, 0)
	if !s.apply([]byte(" "), start).Drop {
		t.Fatal("first tap should drop")
	}
	if !s.apply([]byte(" "), start.Add(800*time.Millisecond)).Drop {
		t.Fatal("second tap after the repeat delay should drop")
	}
}

func TestRestartIsEdgeTriggered(t *testing.T) {
	s := &Stream{}
	now := time.Unix(1000, 0)
	if in := s.apply([]byte("r"), now); !in.Restart {
		t.Fatal("r should restart")
	}
	if in := s.apply([]byte("R"), now.Add(5*time.Millisecond)); in.Restart {
		t.Fatal("held r should not restart twice")
	}
}

func TestHeldRotation(t *testing.T) {
	tests := []struct {
		name        string
		bytes       string
		left, right bool
	}{
		{"a", "a", true, false},
		{"d", "d", false, true},
		{"left arrow", "\x1b[D", true, false},
		{"right arrow", "\x1b[C", false, true},
		{"up arrow ignored", "\x1b[A", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{}
			now := time.Unix(1000, 0)
			in := s.apply([]byte(tt.bytes), now)
			if in.Left != tt.left || in.Right != tt.right {
				t.Fatalf("left=%v right=%v, want left=%v right=%v", in.Left, in.Right, tt.left, tt.right)
			}
			// Still held shortly after, released after the hold window
			if in := s.apply(nil, now.Add(10*time.Millisecond)); in.Left != tt.left || in.Right != tt.right {
				t.Fatal("key released too early")
			}
			if in := s.apply(nil, now.Add(50*time.Millisecond)); in.Left || in.Right {
				t.Fatal("key still held after hold window")
			}
		})
	}
}

func TestClosedInputQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed input never reported quit")
}
