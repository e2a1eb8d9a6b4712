package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"dotlife/internal/core"
)

// kappa places cubic Bézier control points so four arcs approximate a circle.
const kappa = 0.5522847498

// ImageSurface is a Surface backed by an in-memory RGBA image.
type ImageSurface struct {
	img  *image.RGBA
	fill *image.Uniform
	z    *vector.Rasterizer
}

// NewImageSurface allocates a transparent w x h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		fill: image.NewUniform(color.Black),
		z:    vector.NewRasterizer(0, 0),
	}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Size reports the surface dimensions.
func (s *ImageSurface) Size() core.Size {
	b := s.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Clear wipes the whole surface.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// ClearRect wipes the pixels covered by the rectangle.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// SetFill selects the disc color.
func (s *ImageSurface) SetFill(c color.Color) { s.fill = image.NewUniform(c) }

// FillCircle rasterises an anti-aliased disc.
func (s *ImageSurface) FillCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	b := pixelRect(cx-r, cy-r, cx+r, cy+r).Intersect(s.img.Bounds())
	if b.Empty() {
		return
	}
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	x := float32(cx - float64(b.Min.X))
	y := float32(cy - float64(b.Min.Y))
	rr := float32(r)
	k := float32(kappa) * rr
	s.z.MoveTo(x+rr, y)
	s.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	s.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	s.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	s.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	s.z.ClosePath()
	s.z.Draw(s.img, b, s.fill, image.Point{})
}

func pixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
}
