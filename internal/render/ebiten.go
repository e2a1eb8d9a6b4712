//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dotlife/internal/core"
)

// EbitenSurface is a Surface backed by a persistent ebiten image, so cells
// that are not repainted keep their pixels between frames.
type EbitenSurface struct {
	img  *ebiten.Image
	fill color.Color
}

// NewEbitenSurface allocates a w x h canvas.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{img: ebiten.NewImage(max(w, 1), max(h, 1)), fill: color.Black}
}

// Image exposes the canvas for compositing onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// Size reports the canvas dimensions.
func (s *EbitenSurface) Size() core.Size {
	b := s.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Clear wipes the canvas.
func (s *EbitenSurface) Clear() { s.img.Clear() }

// ClearRect wipes the pixels covered by the rectangle.
func (s *EbitenSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Clear()
}

// SetFill selects the disc color.
func (s *EbitenSurface) SetFill(c color.Color) { s.fill = c }

// FillCircle draws an anti-aliased disc.
func (s *EbitenSurface) FillCircle(cx, cy, r float64) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), s.fill, true)
}

// Dispose releases the GPU image.
func (s *EbitenSurface) Dispose() {
	if s.img != nil {
		s.img.Dispose()
	}
}

var _ Surface = (*EbitenSurface)(nil)
