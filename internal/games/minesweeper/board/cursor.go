package board

// Cursor movement wraps around at every edge. All moves are no-ops on a
// board with a zero dimension.

// MoveUp moves the cursor one row up, wrapping to the bottom row.
func (b *Board) MoveUp() {
	if b.empty() {
		return
	}
	if b.cursor.Y == 0 {
		b.cursor.Y = b.height - 1
		return
	}
	b.cursor.Y--
}

// MoveDown moves the cursor one row down, wrapping to the top row.
func (b *Board) MoveDown() {
	if b.empty() {
		return
	}
	b.cursor.Y++
	if b.cursor.Y >= b.height {
		b.cursor.Y = 0
	}
}

// MoveLeft moves the cursor one column left, wrapping to the last column.
func (b *Board) MoveLeft() {
	if b.empty() {
		return
	}
	if b.cursor.X == 0 {
		b.cursor.X = b.width - 1
		return
	}
	b.cursor.X--
}

// MoveRight moves the cursor one column right, wrapping to the first column.
func (b *Board) MoveRight() {
	if b.empty() {
		return
	}
	b.cursor.X++
	if b.cursor.X >= b.width {
		b.cursor.X = 0
	}
}

func (b *Board) empty() bool {
	return b.width == 0 || b.height == 0
}
