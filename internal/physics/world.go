package physics

import "math"

// BodyType selects how a body takes part in the simulation.
type BodyType int

const (
	BodyDynamic   BodyType = iota // Integrates velocity, responds to contacts
	BodyKinematic                 // Moves by its velocity only; immovable for contacts
	BodyStatic                    // Never moves
)

func (t BodyType) String() string {
	switch t {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// BodyID identifies a body. IDs are never reused within a World.
type BodyID uint64

// Body is a circular rigid body.
type Body struct {
	ID     BodyID
	Type   BodyType
	X, Y   float64 // Center position
	VX, VY float64 // Velocity
	Radius float64 // Collider radius
	Mass   float64
}

func (b *Body) invMass() float64 {
	if b.Type != BodyDynamic || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

// Pair is an unordered body pair, stored with A < B.
type Pair struct {
	A, B BodyID
}

// MakePair returns the canonical pair for two bodies.
func MakePair(a, b BodyID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// WorldOptions configures a World.
type WorldOptions struct {
	CenterX, CenterY float64 // Center of the broad-phase grid
	HalfExtent       float64 // Half size of the grid square
	CellSize         float64 // Must be >= the largest pair of radii summed
	LinearDamping    float64 // Per-second velocity damping of dynamic bodies
	Restitution      float64 // 0 = perfectly inelastic contacts
}

// World owns all bodies and steps them. Not safe for concurrent use.
type World struct {
	opts   WorldOptions
	bodies []*Body // Insertion order keeps stepping deterministic
	byID   map[BodyID]*Body
	nextID BodyID

	// Contacts seen on the previous and current step, for collision-start detection
	previous map[Pair]struct{}
	current  map[Pair]struct{}
	started  []Pair

	grid *SpatialGrid
}

// NewWorld creates an empty world.
func NewWorld(opts WorldOptions) *World {
	return &World{
		opts:     opts,
		byID:     make(map[BodyID]*Body),
		nextID:   1,
		previous: make(map[Pair]struct{}),
		current:  make(map[Pair]struct{}),
		grid:     NewSpatialGrid(opts.CenterX, opts.CenterY, opts.HalfExtent, opts.CellSize),
	}
}

// Add inserts a copy of b and returns its new ID. Any ID set on b is ignored.
func (w *World) Add(b Body) BodyID {
	body := b
	body.ID = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, &body)
	w.byID[body.ID] = &body
	return body.ID
}

// Remove deletes a body. Unknown IDs are ignored.
func (w *World) Remove(id BodyID) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	clear(w.bodies[len(kept):])
	w.bodies = kept
	w.forgetContacts(id)
}

// Clear removes every body.
func (w *World) Clear() {
	clear(w.bodies)
	w.bodies = w.bodies[:0]
	clear(w.byID)
	clear(w.previous)
	clear(w.current)
	w.started = w.started[:0]
}

// Body returns the live body for id.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// SetType changes a body's type. Contacts involving the body are forgotten so that
// bodies still touching it report a fresh collision start on the next step.
func (w *World) SetType(id BodyID, t BodyType) {
	b, ok := w.byID[id]
	if !ok || b.Type == t {
		return
	}
	b.Type = t
	w.forgetContacts(id)
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// CollisionsStarted returns the pairs that began touching during the last Step.
// The slice is reused by the next Step.
func (w *World) CollisionsStarted() []Pair {
	return w.started
}

// Step integrates velocities, resolves contacts and records collision starts.
func (w *World) Step(dt float64) {
	w.started = w.started[:0]
	if dt > 0 {
		w.integrate(dt)
	}

	w.grid.Clear()
	for i, b := range w.bodies {
		w.grid.Insert(b.X, b.Y, i)
	}

	clear(w.current)
	for i, a := range w.bodies {
		w.grid.QueryAround(a.X, a.Y, func(j int) bool {
			if j <= i {
				return false // Skip self and already-checked pairs
			}
			b := w.bodies[j]
			if a.Type != BodyDynamic && b.Type != BodyDynamic {
				return false
			}
			if !CirclesOverlap(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius) {
				return false
			}
			p := MakePair(a.ID, b.ID)
			w.current[p] = struct{}{}
			if _, seen := w.previous[p]; !seen {
				w.started = append(w.started, p)
			}
			w.resolve(a, b)
			return false
		})
	}
	w.previous, w.current = w.current, w.previous
}

// integrate advances positions by velocity, damping dynamic bodies first.
func (w *World) integrate(dt float64) {
	damping := 1 / (1 + dt*w.opts.LinearDamping)
	for _, b := range w.bodies {
		switch b.Type {
		case BodyDynamic:
			b.VX *= damping
			b.VY *= damping
		case BodyStatic:
			continue
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
}

// resolve separates two overlapping bodies and removes their approaching velocity.
// Non-dynamic bodies have zero inverse mass, so they push without being pushed.
func (w *World) resolve(a, b *Body) {
	ia, ib := a.invMass(), b.invMass()
	total := ia + ib
	if total == 0 {
		return
	}

	// Collision normal from a to b
	dist := Distance(a.X, a.Y, b.X, b.Y)
	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx = (b.X - a.X) / dist
		ny = (b.Y - a.Y) / dist
	}

	overlap := a.Radius + b.Radius - dist
	a.X -= nx * overlap * ia / total
	a.Y -= ny * overlap * ia / total
	b.X += nx * overlap * ib / total
	b.Y += ny * overlap * ib / total

	// Relative velocity of b with respect to a along the normal; negative means approaching
	dvn := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	if dvn >= 0 {
		return
	}
	j := -(1 + w.opts.Restitution) * dvn / total
	a.VX -= j * ia * nx
	a.VY -= j * ia * ny
	b.VX += j * ib * nx
	b.VY += j * ib * ny
}

func (w *World) forgetContacts(id BodyID) {
	for p := range w.previous {
		if p.A == id || p.B == id {
			delete(w.previous, p)
		}
	}
}

// Speed returns the magnitude of a body's velocity.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
