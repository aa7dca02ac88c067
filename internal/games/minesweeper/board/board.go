package board

import "github.com/vovakirdan/minesweeper/internal/core"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Board is a width x height grid of cells stored row-major
// (index = y*width + x) plus a cursor position.
type Board struct {
	width  int
	height int
	cells  []Cell
	cursor Point
}

// New creates a board with every cell at count 0 and the cursor at (0, 0).
// A zero dimension yields an empty board; negative sizes are treated as zero.
func New(width, height int) *Board {
	b := &Board{}
	b.reset(width, height)
	return b
}

// reset reallocates the cells for a new size.
func (b *Board) reset(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.cells = make([]Cell, b.width*b.height)
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// index maps a coordinate to its position in the flat cell slice.
func (b *Board) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	i := y*b.width + x
	if i >= len(b.cells) {
		return 0, false
	}
	return i, true
}

// coords is the inverse of index.
func (b *Board) coords(i int) (int, int) {
	return i % b.width, i / b.width
}

// Get returns the cell at (x, y), or nil when the coordinate is off the board.
func (b *Board) Get(x, y int) *Cell {
	i, ok := b.index(x, y)
	if !ok {
		return nil
	}
	return &b.cells[i]
}

// Resize discards all cell state and reallocates the board at the new size.
// The cursor is clamped into the new bounds.
func (b *Board) Resize(width, height int) {
	b.reset(width, height)
	b.cursor.X = core.Clamp(b.cursor.X, 0, max(b.width-1, 0))
	b.cursor.Y = core.Clamp(b.cursor.Y, 0, max(b.height-1, 0))
}

// Cursor returns the cursor position.
func (b *Board) Cursor() (int, int) {
	return b.cursor.X, b.cursor.Y
}

// SetCursor moves the cursor to (x, y). It returns false and leaves the
// cursor untouched when the coordinate is off the board.
func (b *Board) SetCursor(x, y int) bool {
	if _, ok := b.index(x, y); !ok {
		return false
	}
	b.cursor = Point{X: x, Y: y}
	return true
}

// Counters are derived from the cells, so writes through Get are reflected.

// Mines returns how many cells hold a mine.
func (b *Board) Mines() int {
	return b.count(func(c Cell) bool { return c.mine })
}

// Flags returns how many cells carry a flag.
func (b *Board) Flags() int {
	return b.count(func(c Cell) bool { return c.vis == Flagged })
}

// Revealed returns how many safe cells have been revealed.
func (b *Board) Revealed() int {
	return b.count(func(c Cell) bool { return !c.mine && c.vis == Revealed })
}

// Cleared reports whether every safe cell has been revealed.
func (b *Board) Cleared() bool {
	return len(b.cells) > 0 && b.count(func(c Cell) bool { return !c.mine && c.vis != Revealed }) == 0
}

func (b *Board) count(match func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if match(c) {
			n++
		}
	}
	return n
}
