package game

import "github.com/tomz197/planetmerge/internal/object"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventSpawned      EventKind = iota // A ball was dropped
	EventFused                         // Two balls started fusing into Tier
	EventScoreChanged                  // Value holds the new score
	EventBestChanged                   // Value holds the new best score
	EventGameOver                      // Show the game-over banner
	EventRestarted                     // Hide the game-over banner
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventFused:
		return "fused"
	case EventScoreChanged:
		return "score changed"
	case EventBestChanged:
		return "best changed"
	case EventGameOver:
		return "game over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer.
type Event struct {
	Kind  EventKind
	Tier  object.Tier
	Value uint64
	X, Y  float64 // World position of spawns and fusions
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the events queued since the last call and clears the queue.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}
