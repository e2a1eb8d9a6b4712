// Package layout maps a rectangular pixel surface onto a packed grid of
// circular cells and back.
package layout

import (
	"math"

	"dotlife/internal/core"
)

// Layout holds the geometry of a grid of circles centred on a surface.
type Layout struct {
	Width, Height float64

	Radius        float64
	Margin        float64
	OuterRadius   float64
	OuterDiameter float64

	NumRows int
	NumCols int

	RowGutter float64
	ColGutter float64
	RowOffset float64
	ColOffset float64
}

// Compute returns the layout for a width x height surface holding cells of
// the given radius separated by margin. Degenerate inputs yield a layout with
// zero rows or columns.
func Compute(width, height, radius, margin float64) Layout {
	l := Layout{Width: width, Height: height, Radius: radius, Margin: margin}
	l.OuterRadius = radius + margin
	l.OuterDiameter = 2 * l.OuterRadius
	if l.OuterDiameter <= 0 {
		return l
	}

	l.NumRows = fit(height, margin, l.OuterDiameter)
	l.NumCols = fit(width, margin, l.OuterDiameter)

	l.RowGutter = math.Floor((height - float64(l.NumRows)*l.OuterDiameter) / 2)
	l.ColGutter = math.Floor((width - float64(l.NumCols)*l.OuterDiameter) / 2)

	l.RowOffset = l.OuterRadius + l.RowGutter
	l.ColOffset = l.OuterRadius + l.ColGutter
	return l
}

func fit(extent, margin, diameter float64) int {
	n := math.Floor((extent - 4*margin) / diameter)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Empty reports whether the layout holds no cells.
func (l Layout) Empty() bool { return l.NumRows == 0 || l.NumCols == 0 }

// Center returns the pixel centre of the cell at (row, col).
func (l Layout) Center(row, col int) core.Point {
	return core.Point{
		X: l.ColOffset + float64(col)*l.OuterDiameter,
		Y: l.RowOffset + float64(row)*l.OuterDiameter,
	}
}

// Span returns the pixel extent occupied by the cells, gutters excluded.
func (l Layout) Span() (w, h float64) {
	return float64(l.NumCols) * l.OuterDiameter, float64(l.NumRows) * l.OuterDiameter
}

// PixelToCell resolves the cell under pixel (x, y). ok is false when the
// pixel falls outside the drawn grid.
func (l Layout) PixelToCell(x, y float64) (row, col int, ok bool) {
	if l.OuterDiameter <= 0 {
		return 0, 0, false
	}
	r := math.Floor((y - l.RowGutter) / l.OuterDiameter)
	c := math.Floor((x - l.ColGutter) / l.OuterDiameter)
	if r < 0 || c < 0 || r >= float64(l.NumRows) || c >= float64(l.NumCols) {
		return 0, 0, false
	}
	return int(r), int(c), true
}

// IsClick reports whether a press and release at the given pixels count as
// a click rather than a drag: both axis deltas must stay under radius.
func IsClick(press, release core.Point, radius float64) bool {
	return math.Abs(release.X-press.X) < radius && math.Abs(release.Y-press.Y) < radius
}
