package life

import (
	"testing"

	"dotlife/internal/core"
	"dotlife/internal/layout"
)

func testLayout(rows, cols int) layout.Layout {
	return layout.Layout{
		Radius: 4, Margin: 1, OuterRadius: 5, OuterDiameter: 10,
		NumRows: rows, NumCols: cols, RowOffset: 5, ColOffset: 5,
	}
}

// gridFrom builds a grid from rows of '#' (alive) and '.' (dead).
func gridFrom(t *testing.T, n Neighborhood, rows ...string) *Grid {
	t.Helper()
	g := Build(testLayout(len(rows), len(rows[0])), Blank, nil)
	g.SetNeighborhood(n)
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g.SetAlive(r, c)
			}
		}
	}
	return g
}

func expectGrid(t *testing.T, g *Grid, rows ...string) {
	t.Helper()
	for r, line := range rows {
		for c, ch := range line {
			cell, ok := g.At(r, c)
			if !ok {
				t.Fatalf("cell (%d,%d) out of range", r, c)
			}
			if want := ch == '#'; cell.Alive != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, cell.Alive, want)
			}
		}
	}
}

func TestNeighborsWrapEveryEdge(t *testing.T) {
	g := Build(testLayout(4, 5), Blank, nil)
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			seen := map[[2]int]bool{}
			for _, rc := range g.Neighbors(row, col) {
				if rc[0] < 0 || rc[0] >= 4 || rc[1] < 0 || rc[1] >= 5 {
					t.Fatalf("neighbor %v of (%d,%d) out of range", rc, row, col)
				}
				seen[rc] = true
			}
			if len(seen) != 8 {
				t.Fatalf("cell (%d,%d) has %d distinct neighbors, want 8", row, col, len(seen))
			}
		}
	}
	got := g.Neighbors(0, 0)
	want := [8][2]int{{3, 4}, {3, 0}, {3, 1}, {0, 4}, {0, 1}, {1, 4}, {1, 0}, {1, 1}}
	if got != want {
		t.Fatalf("Neighbors(0,0) = %v, want %v", got, want)
	}
}

func TestNeighborsNarrowGrids(t *testing.T) {
	one := Build(testLayout(1, 1), Blank, nil)
	for _, rc := range one.Neighbors(0, 0) {
		if rc != [2]int{0, 0} {
			t.Fatalf("1x1 neighbor = %v, want (0,0)", rc)
		}
	}

	row := Build(testLayout(1, 3), Blank, nil)
	got := row.Neighbors(0, 0)
	want := [8][2]int{{0, 2}, {0, 0}, {0, 1}, {0, 2}, {0, 1}, {0, 2}, {0, 0}, {0, 1}}
	if got != want {
		t.Fatalf("1x3 Neighbors(0,0) = %v, want %v", got, want)
	}
}

func TestEvolveRuleOnThreeByThree(t *testing.T) {
	// On a 3x3 torus every other cell is a neighbor, so the count is the
	// live total minus the cell itself.
	g := gridFrom(t, Moore,
		"##.",
		".#.",
		"...",
	)
	// Alive cells see 2 and die; dead cells see 3 and come alive.
	if live := g.Evolve(); live != 6 {
		t.Fatalf("live = %d, want 6", live)
	}
	expectGrid(t, g,
		"..#",
		"#.#",
		"###",
	)
	// Alive cells see 5 and die; dead cells see 6 and stay dead.
	if live := g.Evolve(); live != 0 {
		t.Fatalf("live = %d, want 0", live)
	}
}

func TestEvolveCountFourPreserves(t *testing.T) {
	// Four live cells: alive cells see 3 and stay, dead cells see 4 and stay.
	g := gridFrom(t, Moore,
		"#.#",
		"...",
		"#.#",
	)
	for gen := 0; gen < 3; gen++ {
		if live := g.Evolve(); live != 4 {
			t.Fatalf("generation %d live = %d, want 4", gen, live)
		}
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if cell, _ := g.At(row, col); cell.Changed {
					t.Fatalf("cell (%d,%d) flagged changed in a fixed point", row, col)
				}
			}
		}
	}
	expectGrid(t, g,
		"#.#",
		"...",
		"#.#",
	)
}

func TestEvolveBlinkerMoore(t *testing.T) {
	g := gridFrom(t, Moore,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	if live := g.Evolve(); live != 2 {
		t.Fatalf("live = %d, want 2", live)
	}
	expectGrid(t, g,
		".....",
		".....",
		".#.#.",
		".....",
		".....",
	)
	if live := g.Evolve(); live != 0 {
		t.Fatalf("live = %d, want 0", live)
	}
}

func TestEvolveBlinkerInclusive(t *testing.T) {
	g := gridFrom(t, Inclusive,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	g.Evolve()
	expectGrid(t, g,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	if live := g.Evolve(); live != 3 {
		t.Fatalf("live = %d, want 3", live)
	}
	expectGrid(t, g,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
}

func TestEvolveGliderInclusiveTranslates(t *testing.T) {
	g := Build(testLayout(8, 8), Glider, nil)
	g.SetNeighborhood(Inclusive)
	for i := 0; i < 4; i++ {
		g.Evolve()
	}
	want := map[[2]int]bool{{3, 4}: true, {4, 5}: true, {5, 3}: true, {5, 4}: true, {5, 5}: true}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell, _ := g.At(row, col)
			if cell.Alive != want[[2]int{row, col}] {
				t.Fatalf("after 4 generations cell (%d,%d) alive=%v", row, col, cell.Alive)
			}
		}
	}
}

func TestEvolveSingleCellTorus(t *testing.T) {
	g := gridFrom(t, Moore, "#")
	// The lone cell is its own eight neighbors.
	if live := g.Evolve(); live != 0 {
		t.Fatalf("live = %d, want 0", live)
	}
}

func TestEvolveEmptyGrid(t *testing.T) {
	for _, l := range []layout.Layout{testLayout(0, 10), testLayout(10, 0), {}} {
		g := Build(l, Random, core.NewRNG(1))
		if !g.Empty() {
			t.Fatal("expected empty grid")
		}
		if live := g.Evolve(); live != 0 {
			t.Fatalf("live = %d, want 0", live)
		}
		if g.Toggle(0, 0) || g.SetAlive(0, 0) {
			t.Fatal("edits on an empty grid must be no-ops")
		}
	}
}

func TestBlankStaysEmpty(t *testing.T) {
	g := Build(testLayout(12, 9), Blank, nil)
	for i := 0; i < 20; i++ {
		if live := g.Evolve(); live != 0 {
			t.Fatalf("generation %d live = %d, want 0", i, live)
		}
	}
}

func TestBuildMarksEveryCellChanged(t *testing.T) {
	l := testLayout(3, 4)
	g := Build(l, Blank, nil)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			cell, _ := g.At(row, col)
			if !cell.Changed {
				t.Fatalf("cell (%d,%d) not flagged for the initial draw", row, col)
			}
			if cell.Center != l.Center(row, col) {
				t.Fatalf("cell (%d,%d) center %+v, want %+v", row, col, cell.Center, l.Center(row, col))
			}
		}
	}
}

func TestToggleAndSetAlive(t *testing.T) {
	g := Build(testLayout(3, 3), Blank, nil)
	g.MarkDrawn(1, 1)
	if !g.Toggle(1, 1) {
		t.Fatal("toggle in range reported false")
	}
	cell, _ := g.At(1, 1)
	if !cell.Alive || !cell.Changed {
		t.Fatalf("toggled cell = %+v", cell)
	}
	g.Toggle(1, 1)
	if cell, _ = g.At(1, 1); cell.Alive {
		t.Fatal("second toggle did not kill the cell")
	}

	g.SetAlive(0, 2)
	g.SetAlive(0, 2)
	if cell, _ = g.At(0, 2); !cell.Alive {
		t.Fatal("SetAlive must never toggle a live cell off")
	}
	if g.Toggle(3, 0) || g.SetAlive(-1, 0) {
		t.Fatal("out of range edits must report false")
	}
	if g.LiveCount() != 1 {
		t.Fatalf("live count = %d, want 1", g.LiveCount())
	}
}
