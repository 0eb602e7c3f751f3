package core

// Grid dimensions and layout constants.
const (
	GridGroups      = 18 // Columns of the table
	GridRows        = 10 // Period rows including the f-block gap
	ScreenMargin    = 3  // Columns reserved on the right edge
	GapPeriod       = 8  // First f-block period; drawn one row lower
	BorderThreshold = 3  // Squares get a border only above this scale
)

// ScaleFactor derives how many terminal columns one grid unit occupies.
// Terminal cells are about twice as tall as wide, so the height budget is
// doubled here and halved again when rows are placed.
func ScaleFactor(width, height int) int {
	usable := Max(width-ScreenMargin, 0)
	widthScale := usable / GridGroups
	heightScale := Max(height, 0) / GridRows * 2
	return Min(widthScale, heightScale)
}

// Bordered reports whether squares are drawn with a border at this scale.
func Bordered(scale int) bool {
	return scale > BorderThreshold
}

// CellToScreen returns the top-left terminal position of a grid cell.
// Periods from GapPeriod on are shifted down one row to separate the
// f-block from the main table.
func CellToScreen(c Cell, scale int) Point {
	row := c.Period
	if row >= GapPeriod {
		row++
	}
	return Point{X: c.Group * scale, Y: row * scale / 2}
}

// ScreenToCell maps a terminal position back to the grid cell whose square
// covers it. It reports false for negative positions, a zero scale and the
// gap row above the f-block.
//
// Row r belongs to the largest q with q*scale/2 <= r, which is
// (2r+1)/scale; that inverts CellToScreen exactly for every scale >= 2.
func ScreenToCell(p Point, scale int) (Cell, bool) {
	if scale <= 0 || p.X < 0 || p.Y < 0 {
		return Cell{}, false
	}

	row := (2*p.Y + 1) / scale
	switch {
	case row == GapPeriod:
		return Cell{}, false
	case row > GapPeriod:
		row--
	}

	return Cell{Group: p.X / scale, Period: row}, true
}

// SquareRect returns the screen area covered by a cell's square.
func SquareRect(c Cell, scale int) Rect {
	p := CellToScreen(c, scale)
	return NewRect(p.X, p.Y, scale, scale/2)
}

// TableHeight returns the number of rows the table occupies at a scale.
func TableHeight(scale int) int {
	return GridRows * scale / 2
}

// DrawnHeight returns the rows covered once the f-block gap row is added.
func DrawnHeight(scale int) int {
	return TableHeight(scale) + scale/2
}

// DrawnWidth returns the columns covered up to the right edge of group 18.
func DrawnWidth(scale int) int {
	return (GridGroups + 1) * scale
}

// FitScale returns ScaleFactor for a drawing area of width x rows, lowered
// until the whole table including the f-block fits inside it.
func FitScale(width, rows int) int {
	scale := ScaleFactor(width, rows)
	for scale > 0 && (DrawnHeight(scale) > rows || DrawnWidth(scale) > width) {
		scale--
	}
	return scale
}
