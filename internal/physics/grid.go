package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// bounded playfield. Objects are inserted by position and index, then nearby
// objects can be queried via a 3x3 neighborhood lookup.
//
// Positions outside the playfield are clamped into the border cells, so
// entities waiting off-screen are still found by queries near the edge.
// Cell size must be >= the maximum interaction distance between any two
// colliding objects.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given field dimensions.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Iteration stops early when fn returns true.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts coordinates to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = ClampInt(int(math.Floor(x*g.invCellSize)), 0, g.cols-1)
	row = ClampInt(int(math.Floor(y*g.invCellSize)), 0, g.rows-1)
	return col, row
}
