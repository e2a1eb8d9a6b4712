package render

import (
	"image/color"

	"dotlife/internal/core"
	"dotlife/internal/life"
)

// Region is an inclusive block of rows and columns.
type Region struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// CellRegion returns the region covering the single cell (row, col).
func CellRegion(row, col int) *Region {
	return &Region{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Stats summarises one Draw call.
type Stats struct {
	Alive int
	Dead  int
}

// Painted returns the number of repainted cells.
func (s Stats) Painted() int { return s.Alive + s.Dead }

// Painter draws grids onto surfaces, reusing its batch buffers between
// frames.
type Painter struct {
	alive []core.Point
	dead  []core.Point
}

// NewPainter allocates a Painter.
func NewPainter() *Painter { return &Painter{} }

// Draw repaints the cells of g inside region (the whole grid when nil) that
// are flagged changed, or all of them when force is set. Each repainted cell
// has its square cleared first; fills are then batched so the alive color and
// the dead color are each selected at most once.
func (p *Painter) Draw(g *life.Grid, s Surface, alive, dead color.Color, force bool, region *Region) Stats {
	if g == nil || s == nil || g.Empty() {
		return Stats{}
	}
	r := clampRegion(region, g.Rows(), g.Cols())
	radius := g.Layout().Radius
	diameter := 2 * radius

	p.alive = p.alive[:0]
	p.dead = p.dead[:0]
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			cell, _ := g.At(row, col)
			if !force && !cell.Changed {
				continue
			}
			if cell.Alive {
				p.alive = append(p.alive, cell.Center)
			} else {
				p.dead = append(p.dead, cell.Center)
			}
			s.ClearRect(cell.Center.X-radius, cell.Center.Y-radius, diameter, diameter)
			g.MarkDrawn(row, col)
		}
	}

	fillBatch(s, alive, p.alive, radius)
	fillBatch(s, dead, p.dead, radius)
	return Stats{Alive: len(p.alive), Dead: len(p.dead)}
}

func fillBatch(s Surface, c color.Color, centers []core.Point, radius float64) {
	if len(centers) == 0 {
		return
	}
	s.SetFill(c)
	for _, pt := range centers {
		s.FillCircle(pt.X, pt.Y, radius)
	}
}

func clampRegion(region *Region, rows, cols int) Region {
	r := Region{EndRow: rows - 1, EndCol: cols - 1}
	if region == nil {
		return r
	}
	r.StartRow = max(region.StartRow, 0)
	r.StartCol = max(region.StartCol, 0)
	r.EndRow = min(region.EndRow, rows-1)
	r.EndCol = min(region.EndCol, cols-1)
	return r
}
