package layout

import (
	"math"
	"testing"

	"dotlife/internal/core"
)

func TestComputeCentersGrid(t *testing.T) {
	l := Compute(200, 200, 5, 1)
	if l.OuterDiameter != 12 {
		t.Fatalf("outer diameter = %v, want 12", l.OuterDiameter)
	}
	if l.NumRows != 16 || l.NumCols != 16 {
		t.Fatalf("grid = %dx%d, want 16x16", l.NumRows, l.NumCols)
	}
	w, h := l.Span()
	if w > 200 || h > 200 {
		t.Fatalf("span %vx%v exceeds surface", w, h)
	}
	// Slack on each side of the grid differs by at most a pixel.
	top := l.RowGutter
	bottom := 200 - h - l.RowGutter
	if math.Abs(top-bottom) > 1 {
		t.Fatalf("row gutters uneven: %v vs %v", top, bottom)
	}
	left := l.ColGutter
	right := 200 - w - l.ColGutter
	if math.Abs(left-right) > 1 {
		t.Fatalf("col gutters uneven: %v vs %v", left, right)
	}
	if l.RowOffset != 10 || l.ColOffset != 10 {
		t.Fatalf("offsets = (%v,%v), want (10,10)", l.RowOffset, l.ColOffset)
	}
}

func TestComputeUnevenSurface(t *testing.T) {
	l := Compute(101, 57, 4, 1.5)
	if l.NumCols != 8 || l.NumRows != 4 {
		t.Fatalf("grid = %dx%d, want 4x8", l.NumRows, l.NumCols)
	}
	// (57 - 44) / 2 = 6.5 floors to 6; (101 - 88) / 2 = 6.5 floors to 6.
	if l.RowGutter != 6 || l.ColGutter != 6 {
		t.Fatalf("gutters = (%v,%v), want (6,6)", l.RowGutter, l.ColGutter)
	}
}

func TestComputeDegenerateSurfaces(t *testing.T) {
	cases := []struct {
		name       string
		w, h, r, m float64
	}{
		{"tiny", 5, 5, 4, 1},
		{"zero", 0, 0, 4, 1},
		{"negative", -100, -20, 4, 1},
		{"zero radius and margin", 100, 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := Compute(tc.w, tc.h, tc.r, tc.m)
			if !l.Empty() {
				t.Fatalf("expected empty layout, got %dx%d", l.NumRows, l.NumCols)
			}
			if _, _, ok := l.PixelToCell(1, 1); ok {
				t.Fatal("empty layout resolved a cell")
			}
		})
	}
}

func TestCenterRoundTrip(t *testing.T) {
	l := Compute(333, 211, 3, 0.5)
	for row := 0; row < l.NumRows; row++ {
		for col := 0; col < l.NumCols; col++ {
			c := l.Center(row, col)
			r, k, ok := l.PixelToCell(c.X, c.Y)
			if !ok || r != row || k != col {
				t.Fatalf("center of (%d,%d) mapped to (%d,%d) ok=%v", row, col, r, k, ok)
			}
		}
	}
}

func TestPixelToCellOutside(t *testing.T) {
	l := Compute(200, 200, 5, 1)
	outside := []core.Point{
		{X: 1, Y: 1},
		{X: 199, Y: 100},
		{X: 100, Y: 197},
		{X: -5, Y: 50},
	}
	for _, p := range outside {
		if r, c, ok := l.PixelToCell(p.X, p.Y); ok {
			t.Errorf("pixel %+v resolved to (%d,%d)", p, r, c)
		}
	}
}

func TestIsClick(t *testing.T) {
	press := core.Point{X: 50, Y: 50}
	if !IsClick(press, core.Point{X: 53, Y: 47}, 4) {
		t.Fatal("small movement must count as a click")
	}
	if IsClick(press, core.Point{X: 54, Y: 50}, 4) {
		t.Fatal("movement equal to the radius is a drag")
	}
	if IsClick(press, core.Point{X: 50, Y: 70}, 4) {
		t.Fatal("vertical drag counted as click")
	}
}
