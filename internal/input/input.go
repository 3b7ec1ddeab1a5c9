// Package input turns raw terminal bytes into per-frame player actions.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so holding is inferred from repeat bytes.
const keyHoldDuration = 30 * time.Millisecond

// Edge-triggered keys wait longer before they count as released: terminals send
// the first repeat after an initial delay (typically 250-660 ms), then repeat
// every 30-40 ms.
const (
	edgeRepeatDelay     = 700 * time.Millisecond // Release window after a fresh press
	edgeReleaseDuration = 150 * time.Millisecond // Release window once repeats arrive
)

// Input represents the current frame's input state.
type Input struct {
	Quit    bool // Q pressed or the input closed
	Left    bool // Held: rotate the cursor counter-clockwise
	Right   bool // Held: rotate the cursor clockwise
	Drop    bool // Space or Enter, only on the frame the press starts
	Restart bool // R, only on the frame the press starts
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	drop    edgeKey
	restart edgeKey
}

// edgeKey detects the start of a press from a key's byte stream.
type edgeKey struct {
	last      time.Time
	repeating bool
}

// press records a byte for the key and reports whether it starts a new press.
// Every byte refreshes the release window.
func (k *edgeKey) press(now time.Time) bool {
	window := edgeRepeatDelay
	if k.repeating {
		window = edgeReleaseDuration
	}
	held := !k.last.IsZero() && now.Sub(k.last) < window
	k.last = now
	k.repeating = held
	return !held
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, time.Now())
	in.Quit = in.Quit || s.closed
	return in
}

// apply parses the bytes read this frame and builds the frame's input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	var dropPressed, restartPressed bool
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
			case 'D': // Left arrow
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q':
			s.state.quit = now
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case ' ', '\n', '\r':
			if s.state.drop.press(now) {
				dropPressed = true
			}
		case 'r', 'R':
			if s.state.restart.press(now) {
				restartPressed = true
			}
		}
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Drop:    dropPressed,
		Restart: restartPressed,
		Pressed: buf,
	}
}
