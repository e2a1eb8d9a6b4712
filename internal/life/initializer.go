package life

import "dotlife/internal/core"

// Initializer selects how a freshly built grid is populated.
type Initializer uint8

const (
	Random Initializer = iota
	Blank
	Glider
	HorizontalLine
	VerticalLine
	Plus
)

// randomThreshold keeps roughly one cell in ten alive.
const randomThreshold = 0.90

var initializerNames = [...]string{
	Random:         "random",
	Blank:          "blank",
	Glider:         "glider",
	HorizontalLine: "horizontal-line",
	VerticalLine:   "vertical-line",
	Plus:           "plus",
}

// Initializers lists every initializer in display order.
func Initializers() []Initializer {
	return []Initializer{Blank, Glider, HorizontalLine, VerticalLine, Plus, Random}
}

// InitializerNames lists the names of Initializers in the same order.
func InitializerNames() []string {
	list := Initializers()
	names := make([]string, len(list))
	for i, in := range list {
		names[i] = in.String()
	}
	return names
}

// ParseInitializer resolves a name. Unknown names yield Random and false.
func ParseInitializer(name string) (Initializer, bool) {
	for i, n := range initializerNames {
		if n == name {
			return Initializer(i), true
		}
	}
	return Random, false
}

func (in Initializer) String() string {
	if int(in) < len(initializerNames) {
		return initializerNames[in]
	}
	return initializerNames[Random]
}

// Alive reports the starting state of the cell at (row, col) on a grid of
// numRows x numCols. Only Random consumes rng; it may be nil for the others.
func (in Initializer) Alive(row, col, numRows, numCols int, rng *core.RNG) bool {
	centerRow := numRows / 2
	centerCol := numCols / 2
	switch in {
	case Blank:
		return false
	case Glider:
		return (row == 2 && col == 3) ||
			(row == 3 && col == 4) ||
			(row == 4 && (col == 2 || col == 3 || col == 4))
	case HorizontalLine:
		return row == centerRow
	case VerticalLine:
		return col == centerCol
	case Plus:
		return row == centerRow || col == centerCol
	default:
		if rng == nil {
			return false
		}
		return rng.Float64() > randomThreshold
	}
}
