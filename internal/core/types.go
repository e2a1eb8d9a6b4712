package core

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Point is a position on a drawing surface in pixel units.
type Point struct {
	X float64
	Y float64
}
