// Package life holds the toroidal cell grid and its evolution rule.
package life

import (
	"dotlife/internal/core"
	"dotlife/internal/layout"
)

// Cell is one grid position. Center is fixed when the grid is built.
type Cell struct {
	Center  core.Point
	Alive   bool
	Changed bool
}

// Neighborhood selects which cells contribute to a cell's count.
type Neighborhood uint8

const (
	// Moore counts the eight surrounding cells.
	Moore Neighborhood = iota
	// Inclusive counts the 3x3 block including the cell itself.
	Inclusive
)

// ParseNeighborhood resolves "moore" or "inclusive"; anything else is Moore.
func ParseNeighborhood(name string) (Neighborhood, bool) {
	switch name {
	case "moore":
		return Moore, true
	case "inclusive":
		return Inclusive, true
	}
	return Moore, false
}

func (n Neighborhood) String() string {
	if n == Inclusive {
		return "inclusive"
	}
	return "moore"
}

// Grid is a numRows x numCols torus of cells plus the layout it was built
// from.
type Grid struct {
	layout       layout.Layout
	torus        core.Torus
	neighborhood Neighborhood
	cells        []Cell
}

// Build allocates every cell of l, seeds it with init and flags it changed
// so the first draw paints the whole grid.
func Build(l layout.Layout, init Initializer, rng *core.RNG) *Grid {
	g := &Grid{layout: l}
	if !l.Empty() {
		g.torus = core.Torus{Rows: l.NumRows, Cols: l.NumCols}
	}
	g.cells = make([]Cell, g.torus.Len())
	for row := 0; row < g.torus.Rows; row++ {
		for col := 0; col < g.torus.Cols; col++ {
			g.cells[g.torus.Index(row, col)] = Cell{
				Center:  l.Center(row, col),
				Alive:   init.Alive(row, col, l.NumRows, l.NumCols, rng),
				Changed: true,
			}
		}
	}
	return g
}

// SetNeighborhood changes how neighbors are counted by Evolve.
func (g *Grid) SetNeighborhood(n Neighborhood) { g.neighborhood = n }

// Layout returns the geometry the grid was built from.
func (g *Grid) Layout() layout.Layout { return g.layout }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.torus.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.torus.Cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return len(g.cells) == 0 }

// At returns a copy of the cell at (row, col). ok is false out of range.
func (g *Grid) At(row, col int) (Cell, bool) {
	if !g.torus.Contains(row, col) {
		return Cell{}, false
	}
	return g.cells[g.torus.Index(row, col)], true
}

// MarkDrawn clears the changed flag once a cell has been painted.
func (g *Grid) MarkDrawn(row, col int) {
	if g.torus.Contains(row, col) {
		g.cells[g.torus.Index(row, col)].Changed = false
	}
}

// MarkAllChanged flags every cell for repainting.
func (g *Grid) MarkAllChanged() {
	for i := range g.cells {
		g.cells[i].Changed = true
	}
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// Toggle flips the cell at (row, col). Out of range coordinates are ignored.
func (g *Grid) Toggle(row, col int) bool {
	if !g.torus.Contains(row, col) {
		return false
	}
	c := &g.cells[g.torus.Index(row, col)]
	c.Alive = !c.Alive
	c.Changed = true
	return true
}

// SetAlive makes the cell at (row, col) alive. It reports whether the
// coordinates were in range.
func (g *Grid) SetAlive(row, col int) bool {
	if !g.torus.Contains(row, col) {
		return false
	}
	c := &g.cells[g.torus.Index(row, col)]
	if !c.Alive {
		c.Alive = true
		c.Changed = true
	}
	return true
}

// Neighbors returns the eight wrapped neighbor coordinates of (row, col)
// in row-major order. On narrow grids some coordinates repeat.
func (g *Grid) Neighbors(row, col int) [8][2]int {
	var out [8][2]int
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.torus.Wrap(row+dr, col+dc)
			out[i] = [2]int{r, c}
			i++
		}
	}
	return out
}

func (g *Grid) count(row, col int) int {
	n := 0
	for _, rc := range g.Neighbors(row, col) {
		if g.cells[g.torus.Index(rc[0], rc[1])].Alive {
			n++
		}
	}
	if g.neighborhood == Inclusive && g.cells[g.torus.Index(row, col)].Alive {
		n++
	}
	return n
}

// Evolve advances one generation and returns the resulting live count.
//
// The first pass decides every cell's changed flag from the unmodified grid:
// a count of 3 makes the cell alive, 4 preserves it, anything else kills it.
// The second pass applies the flips.
func (g *Grid) Evolve() int {
	if g.Empty() {
		return 0
	}
	for row := 0; row < g.torus.Rows; row++ {
		for col := 0; col < g.torus.Cols; col++ {
			c := &g.cells[g.torus.Index(row, col)]
			switch g.count(row, col) {
			case 3:
				c.Changed = !c.Alive
			case 4:
				c.Changed = false
			default:
				c.Changed = c.Alive
			}
		}
	}
	live := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Changed {
			c.Alive = !c.Alive
		}
		if c.Alive {
			live++
		}
	}
	return live
}
