package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a bounded board.
// Objects are inserted by position and index, then nearby objects can be queried
// via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood. Positions outside the board clamp to the edge cells,
// which keeps neighbors adjacent because clamping never pulls two points apart.
type SpatialGrid struct {
	minX, minY  float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between steps (reset to [:0]).
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering the square [cx-half, cx+half] on both axes.
func NewSpatialGrid(cx, cy, half, cellSize float64) *SpatialGrid {
	n := int(math.Ceil(2 * half / cellSize))
	if n < 1 {
		n = 1
	}
	return &SpatialGrid{
		minX:        cx - half,
		minY:        cy - half,
		invCellSize: 1.0 / cellSize,
		cols:        n,
		rows:        n,
		cells:       make([]gridCell, n*n),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given world position. Iteration stops early when fn returns true.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to clamped grid cell coordinates.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = clampCell(int(math.Floor((x-g.minX)*g.invCellSize)), g.cols)
	row = clampCell(int(math.Floor((y-g.minY)*g.invCellSize)), g.rows)
	return col, row
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
