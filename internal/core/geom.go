// Package core provides fundamental types and utilities for the minesweeper platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned screen region in cell units.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredIn returns a w by h rect centered in an area of areaW by areaH.
// The origin may be negative when the rect is larger than the area.
func CenteredIn(areaW, areaH, w, h int) Rect {
	return Rect{X: (areaW - w) / 2, Y: (areaH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns r shrunk by one cell on every side (the area inside a box border).
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
