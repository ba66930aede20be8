package world

import "testing"

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("NewGrid(3, 4) = %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell == nil {
			t.Fatalf("cell (%d,%d) is nil", row, col)
		}
		if cell.Row != row || cell.Col != col {
			t.Errorf("cell at (%d,%d) reports (%d,%d)", row, col, cell.Row, cell.Col)
		}
	})
}

func TestNewGrid_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}

func TestGetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if got := g.GetCell(c[0], c[1]); got != nil {
			t.Errorf("GetCell(%d, %d) = %v, want nil", c[0], c[1], got)
		}
	}
}

func TestGetCellRelative_AllDirections(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)

	want := map[Direction][2]int{
		North:     {0, 1},
		East:      {1, 2},
		South:     {2, 1},
		West:      {1, 0},
		NorthEast: {0, 2},
		SouthEast: {2, 2},
		SouthWest: {2, 0},
		NorthWest: {0, 0},
	}
	for dir, pos := range want {
		t.Run(dir.String(), func(t *testing.T) {
			got := g.GetCellRelative(center, dir)
			if got == nil || got.Row != pos[0] || got.Col != pos[1] {
				t.Errorf("GetCellRelative(center, %v) = %v, want (%d,%d)", dir, got, pos[0], pos[1])
			}
		})
	}
}

func TestGetCellRelative_Corner(t *testing.T) {
	g := NewGrid(2, 2)
	corner := g.GetCell(0, 0)
	for _, dir := range []Direction{North, West, NorthWest, NorthEast, SouthWest} {
		if got := g.GetCellRelative(corner, dir); got != nil {
			t.Errorf("GetCellRelative(corner, %v) = %v, want nil", dir, got)
		}
	}
	if got := g.GetCellRelative(corner, Direction(42)); got != nil {
		t.Errorf("GetCellRelative with invalid direction = %v, want nil", got)
	}
}

func TestNeighbors_ScanOrder(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)

	got := g.Neighbors(center, ScanOrder(true))
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("len(Neighbors) = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Row != want[i][0] || c.Col != want[i][1] {
			t.Errorf("Neighbors[%d] = (%d,%d), want (%d,%d)", i, c.Row, c.Col, want[i][0], want[i][1])
		}
	}

	orth := g.Neighbors(center, ScanOrder(false))
	if len(orth) != 4 {
		t.Errorf("len(orthogonal neighbors) = %d, want 4", len(orth))
	}
}

func TestFindCell_RowMajor(t *testing.T) {
	g := NewGrid(2, 3)
	g.GetCell(1, 0).Raw = "x"
	g.GetCell(0, 2).Raw = "x"

	got := g.FindCell(func(c *Cell) bool { return c.Raw == "x" })
	if got == nil || got.Row != 0 || got.Col != 2 {
		t.Errorf("FindCell = %v, want (0,2)", got)
	}
	if g.FindCell(func(c *Cell) bool { return c.Raw == "y" }) != nil {
		t.Error("FindCell with no match returned a cell")
	}
}

func TestDirection_IsCardinal(t *testing.T) {
	for _, dir := range []Direction{North, East, South, West} {
		if !dir.IsCardinal() {
			t.Errorf("%v.IsCardinal() = false, want true", dir)
		}
	}
	if NorthEast.IsCardinal() {
		t.Error("NorthEast.IsCardinal() = true, want false")
	}
}
