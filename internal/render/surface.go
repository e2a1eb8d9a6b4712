// Package render paints a life grid onto a pixel surface.
package render

import (
	"image/color"

	"dotlife/internal/core"
)

// Surface is a 2-D drawing context in the style of an HTML canvas: a current
// fill color plus clear and fill primitives.
type Surface interface {
	Size() core.Size
	// Clear wipes the whole surface to transparent.
	Clear()
	// ClearRect wipes the axis-aligned rectangle at (x, y) of size w x h.
	ClearRect(x, y, w, h float64)
	// SetFill selects the color used by subsequent FillCircle calls.
	SetFill(c color.Color)
	// FillCircle fills a disc of radius r centred on (cx, cy).
	FillCircle(cx, cy, r float64)
}

// Clear wipes s ahead of a structural rebuild.
func Clear(s Surface) {
	if s != nil {
		s.Clear()
	}
}
