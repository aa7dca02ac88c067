// Package board implements the logical minesweeper grid: cells, mine
// placement, adjacency counts, cursor navigation and the reveal/flag workflow.
// It has no knowledge of terminals or rendering.
package board

import "fmt"

// Code is the raw one-byte state of a cell.
// 0x00 through 0x08 are adjacency counts, MineCode marks a mine.
type Code uint8

const (
	// MineCode is the sentinel code of a mined cell.
	MineCode Code = 0xff

	// MaxCount is the largest possible adjacency count.
	MaxCount = 8
)

// Visibility is the player-facing state of a cell. It is independent of
// whether the cell holds a mine or a count.
type Visibility uint8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

// Cell is one grid position: either a mine or a count of adjacent mines.
type Cell struct {
	mine  bool
	count uint8
	vis   Visibility
}

// NewCell constructs a hidden cell from a raw state code.
func NewCell(code Code) Cell {
	var c Cell
	c.Set(code)
	return c
}

// Get returns the raw state code of the cell.
func (c Cell) Get() Code {
	if c.mine {
		return MineCode
	}
	return Code(c.count)
}

// Set overwrites the cell's mine/count state unconditionally.
// Passing a code that is neither a count nor MineCode is a programming error.
func (c *Cell) Set(code Code) {
	switch {
	case code == MineCode:
		c.mine = true
		c.count = 0
	case code <= MaxCount:
		c.mine = false
		c.count = uint8(code)
	default:
		panic(fmt.Sprintf("board: invalid cell code %#02x", uint8(code)))
	}
}

// Inc adds one to the adjacency count. It never changes a mine.
func (c *Cell) Inc() {
	if c.mine || c.count >= MaxCount {
		return
	}
	c.count++
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool {
	return c.mine
}

// Count returns the adjacency count, or 0 for a mine.
func (c Cell) Count() int {
	return int(c.count)
}

// Visibility returns the reveal/flag state.
func (c Cell) Visibility() Visibility {
	return c.vis
}

// IsRevealed reports whether the cell has been opened.
func (c Cell) IsRevealed() bool {
	return c.vis == Revealed
}

// IsFlagged reports whether the cell carries a flag.
func (c Cell) IsFlagged() bool {
	return c.vis == Flagged
}
