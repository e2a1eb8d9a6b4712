package core

// Torus describes the index space of a row-major grid whose edges wrap.
type Torus struct {
	Rows, Cols int
}

// Len returns the number of cells in the torus.
func (t Torus) Len() int {
	if t.Rows <= 0 || t.Cols <= 0 {
		return 0
	}
	return t.Rows * t.Cols
}

// Index returns the linear slice index for (row, col).
func (t Torus) Index(row, col int) int { return row*t.Cols + col }

// Contains reports whether (row, col) lies inside the grid without wrapping.
func (t Torus) Contains(row, col int) bool {
	return row >= 0 && row < t.Rows && col >= 0 && col < t.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates. It must not be
// called on an empty torus.
func (t Torus) Wrap(row, col int) (int, int) {
	row = (row%t.Rows + t.Rows) % t.Rows
	col = (col%t.Cols + t.Cols) % t.Cols
	return row, col
}
