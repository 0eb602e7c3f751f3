// Package core provides the terminal-independent building blocks of the
// periodic table viewer: colors, gradients, grid layout and the screen
// buffer. It contains no external dependencies (especially no Bubble Tea)
// to keep layout and color math pure and testable.
package core

import "fmt"

// Cell is a logical position on the periodic table grid.
type Cell struct {
	Group  int
	Period int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(g%d,p%d)", c.Group, c.Period)
}

// Point is a terminal position; X is the column and Y the row.
type Point struct {
	X int
	Y int
}

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
