package board

import "testing"

// newBoardWithMines builds a board with mines at the given coordinates.
func newBoardWithMines(w, h int, mines ...Point) *Board {
	b := New(w, h)
	for _, m := range mines {
		b.PlaceMine(m.X, m.Y)
	}
	return b
}

func TestRevealFloodFill(t *testing.T) {
	// Single mine in the bottom-right corner; revealing the opposite corner
	// opens every safe cell.
	b := newBoardWithMines(5, 5, Point{4, 4})

	if got := b.Reveal(0, 0); got != RevealSafe {
		t.Fatalf("Reveal(0, 0) = %v, want RevealSafe", got)
	}
	if b.Revealed() != 24 {
		t.Errorf("Revealed() = %d, want 24", b.Revealed())
	}
	if !b.Cleared() {
		t.Error("Cleared() should be true once all safe cells are open")
	}
	if b.Get(4, 4).IsRevealed() {
		t.Error("flood fill must not reveal the mine")
	}
}

func TestRevealStopsAtCounts(t *testing.T) {
	// Wall of mines in column 2 separates the left and right halves.
	b := newBoardWithMines(5, 3, Point{2, 0}, Point{2, 1}, Point{2, 2})

	b.Reveal(0, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			if !b.Get(x, y).IsRevealed() {
				t.Errorf("left cell (%d, %d) should be revealed", x, y)
			}
		}
		for x := 3; x < 5; x++ {
			if b.Get(x, y).IsRevealed() {
				t.Errorf("right cell (%d, %d) should stay hidden", x, y)
			}
		}
	}
	if b.Cleared() {
		t.Error("board should not be cleared with the right half hidden")
	}
}

func TestRevealNumberedCellDoesNotSpread(t *testing.T) {
	b := newBoardWithMines(3, 3, Point{0, 0})

	b.Reveal(1, 1)
	if b.Revealed() != 1 {
		t.Errorf("revealing a counted cell opened %d cells, want 1", b.Revealed())
	}
}

func TestRevealMine(t *testing.T) {
	b := newBoardWithMines(3, 3, Point{1, 1})

	if got := b.Reveal(1, 1); got != RevealMine {
		t.Errorf("Reveal on mine = %v, want RevealMine", got)
	}
	if !b.Get(1, 1).IsRevealed() {
		t.Error("the detonated mine should be revealed")
	}
	if b.Revealed() != 0 {
		t.Errorf("mines must not count as revealed safe cells, got %d", b.Revealed())
	}
}

func TestRevealIgnored(t *testing.T) {
	b := newBoardWithMines(3, 3, Point{0, 0})
	b.ToggleFlag(2, 2)
	b.Reveal(1, 1)

	tests := []struct {
		name string
		x, y int
	}{
		{"flagged", 2, 2},
		{"already revealed", 1, 1},
		{"off board", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Reveal(tt.x, tt.y); got != RevealNone {
				t.Errorf("Reveal(%d, %d) = %v, want RevealNone", tt.x, tt.y, got)
			}
		})
	}
}

func TestToggleFlag(t *testing.T) {
	b := newBoardWithMines(3, 3, Point{0, 0})

	if !b.ToggleFlag(0, 0) || !b.Get(0, 0).IsFlagged() || b.Flags() != 1 {
		t.Fatal("first ToggleFlag should flag the cell")
	}
	if !b.ToggleFlag(0, 0) || b.Get(0, 0).IsFlagged() || b.Flags() != 0 {
		t.Fatal("second ToggleFlag should clear the flag")
	}

	b.Reveal(1, 1)
	if b.ToggleFlag(1, 1) {
		t.Error("revealed cells cannot be flagged")
	}
	if b.ToggleFlag(-1, 0) {
		t.Error("off-board cells cannot be flagged")
	}
}

func TestChord(t *testing.T) {
	// Mine at (0, 0); (1, 1) shows 1.
	b := newBoardWithMines(4, 4, Point{0, 0})
	b.Reveal(1, 1)

	if got := b.Chord(1, 1); got != RevealNone {
		t.Errorf("Chord without flags = %v, want RevealNone", got)
	}

	b.ToggleFlag(0, 0)
	if got := b.Chord(1, 1); got != RevealSafe {
		t.Fatalf("Chord with matching flags = %v, want RevealSafe", got)
	}
	if !b.Cleared() {
		t.Errorf("chord should clear the board, revealed %d of %d", b.Revealed(), b.Len()-b.Mines())
	}
}

func TestChordWrongFlagDetonates(t *testing.T) {
	b := newBoardWithMines(4, 4, Point{0, 0})
	b.Reveal(1, 1)
	b.ToggleFlag(2, 2)

	if got := b.Chord(1, 1); got != RevealMine {
		t.Errorf("Chord with a misplaced flag = %v, want RevealMine", got)
	}
}

func TestChordIgnoresHiddenAndZeroCells(t *testing.T) {
	b := newBoardWithMines(4, 4, Point{0, 0})
	if got := b.Chord(1, 1); got != RevealNone {
		t.Errorf("Chord on hidden cell = %v, want RevealNone", got)
	}

	b.Reveal(3, 3)
	if got := b.Chord(3, 3); got != RevealNone {
		t.Errorf("Chord on zero cell = %v, want RevealNone", got)
	}
}

func TestRevealMinesAndFlagMines(t *testing.T) {
	b := newBoardWithMines(3, 3, Point{0, 0}, Point{2, 2})
	b.ToggleFlag(0, 0)

	b.RevealMines()
	if !b.Get(2, 2).IsRevealed() {
		t.Error("RevealMines should open unflagged mines")
	}
	if !b.Get(0, 0).IsFlagged() {
		t.Error("RevealMines should keep existing flags")
	}

	w := newBoardWithMines(3, 3, Point{0, 0}, Point{2, 2})
	w.FlagMines()
	if w.Flags() != 2 || !w.Get(2, 2).IsFlagged() {
		t.Errorf("FlagMines flagged %d mines, want 2", w.Flags())
	}
}
