package loop

import (
	"math"

	"github.com/tomz197/planetmerge/internal/config"
)

// Orbit is the drop cursor. It circles the board center at a fixed distance.
type Orbit struct {
	Angle float64 // Radians, counter-clockwise from the +X axis
}

// NewOrbit places the cursor at the top of the board.
func NewOrbit() *Orbit {
	return &Orbit{Angle: math.Pi / 2}
}

// Rotate turns the cursor while left or right is held.
func (o *Orbit) Rotate(left, right bool, dt, speed float64) {
	switch {
	case left && !right:
		o.Angle += speed * dt
	case right && !left:
		o.Angle -= speed * dt
	}
	o.Angle = math.Mod(o.Angle, 2*math.Pi)
	if o.Angle < 0 {
		o.Angle += 2 * math.Pi
	}
}

// Position returns the cursor position in world units.
func (o *Orbit) Position(cfg config.Game) (x, y float64) {
	return cfg.BoardCenterX + cfg.CursorOrbit*math.Cos(o.Angle),
		cfg.BoardCenterY + cfg.CursorOrbit*math.Sin(o.Angle)
}
