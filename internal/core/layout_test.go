package core

import "testing"

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      int
	}{
		{"classic 80x24", 80, 24, 4},
		{"wide and short", 300, 20, 4},
		{"tall and narrow", 60, 100, 3},
		{"large", 200, 50, 10},
		{"odd height budget", 200, 35, 6},
		{"narrower than margin", 2, 100, 0},
		{"too short", 100, 9, 0},
		{"zero", 0, 0, 0},
		{"negative", -10, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScaleFactor(tc.width, tc.height); got != tc.expected {
				t.Errorf("ScaleFactor(%d, %d) = %d, expected %d", tc.width, tc.height, got, tc.expected)
			}
		})
	}
}

func TestBordered(t *testing.T) {
	if Bordered(3) {
		t.Error("scale 3 should not be bordered")
	}
	if !Bordered(4) {
		t.Error("scale 4 should be bordered")
	}
}

func TestCellToScreen(t *testing.T) {
	tests := []struct {
		cell     Cell
		scale    int
		expected Point
	}{
		{Cell{1, 1}, 4, Point{4, 2}},
		{Cell{18, 7}, 4, Point{72, 14}},
		{Cell{4, 8}, 4, Point{16, 18}}, // gap row pushes f-block down
		{Cell{4, 9}, 4, Point{16, 20}},
		{Cell{2, 3}, 5, Point{10, 7}},
		{Cell{2, 8}, 5, Point{10, 22}},
	}

	for _, tc := range tests {
		if got := CellToScreen(tc.cell, tc.scale); got != tc.expected {
			t.Errorf("CellToScreen(%v, %d) = %v, expected %v", tc.cell, tc.scale, got, tc.expected)
		}
	}
}

func TestScreenToCellRoundTrip(t *testing.T) {
	for scale := BorderThreshold + 1; scale <= 40; scale++ {
		for period := 1; period < GridRows; period++ {
			for group := 1; group <= GridGroups; group++ {
				cell := Cell{Group: group, Period: period}
				got, ok := ScreenToCell(CellToScreen(cell, scale), scale)
				if !ok || got != cell {
					t.Fatalf("scale %d: ScreenToCell(CellToScreen(%v)) = %v, %v", scale, cell, got, ok)
				}
			}
		}
	}
}

func TestScreenToCellCoversWholeSquare(t *testing.T) {
	for scale := BorderThreshold + 1; scale <= 21; scale++ {
		for period := 1; period < GridRows; period++ {
			for group := 1; group <= GridGroups; group++ {
				cell := Cell{Group: group, Period: period}
				sq := SquareRect(cell, scale)
				for y := sq.Y; y < sq.Bottom(); y++ {
					for x := sq.X; x < sq.Right(); x++ {
						got, ok := ScreenToCell(Point{x, y}, scale)
						if !ok || got != cell {
							t.Fatalf("scale %d: point (%d, %d) in %v maps to %v, %v", scale, x, y, cell, got, ok)
						}
					}
				}
			}
		}
	}
}

func TestScreenToCellGapRow(t *testing.T) {
	scale := 6
	gapY := GapPeriod * scale / 2
	if _, ok := ScreenToCell(Point{X: 20, Y: gapY}, scale); ok {
		t.Errorf("row %d is the f-block gap and should not map to a cell", gapY)
	}
}

func TestScreenToCellRejects(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		scale int
	}{
		{"zero scale", Point{5, 5}, 0},
		{"negative x", Point{-1, 5}, 4},
		{"negative y", Point{5, -1}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c, ok := ScreenToCell(tc.p, tc.scale); ok {
				t.Errorf("ScreenToCell(%v, %d) = %v, expected no cell", tc.p, tc.scale, c)
			}
		})
	}
}

func TestTableHeight(t *testing.T) {
	if got := TableHeight(4); got != 20 {
		t.Errorf("TableHeight(4) = %d, expected 20", got)
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		width, rows int
		expected    int
	}{
		{80, 23, 4},
		{120, 29, 4},
		{200, 39, 6},
		{200, 40, 7}, // ScaleFactor gives 8, which needs 44 rows
		{120, 20, 3}, // ScaleFactor gives 4, which needs 22 rows
		{200, 49, 8},
		{185, 80, 9}, // group 18 would end at column 190
		{10, 40, 0},
	}

	for _, tc := range tests {
		if got := FitScale(tc.width, tc.rows); got != tc.expected {
			t.Errorf("FitScale(%d, %d) = %d, expected %d", tc.width, tc.rows, got, tc.expected)
		}
	}
}

func TestFitScaleKeepsFBlockOnScreen(t *testing.T) {
	for width := 20; width <= 300; width += 7 {
		for rows := 0; rows <= 80; rows++ {
			s := FitScale(width, rows)
			if s > ScaleFactor(width, rows) {
				t.Fatalf("FitScale(%d, %d) = %d exceeds ScaleFactor", width, rows, s)
			}
			if s == 0 {
				continue
			}
			last := SquareRect(Cell{Group: GridGroups, Period: 9}, s)
			if last.Bottom() > rows || last.Right() > width {
				t.Fatalf("FitScale(%d, %d) = %d puts the last row at %v", width, rows, s, last)
			}
		}
	}
}
