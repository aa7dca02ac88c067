package board

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidMineCount is returned for a negative mine count.
	ErrInvalidMineCount = errors.New("board: invalid mine count")

	// ErrTooManyMines is returned when the board has fewer free cells than
	// requested mines.
	ErrTooManyMines = errors.New("board: too many mines")

	// ErrOutOfBounds is returned for a coordinate outside the board.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
)

// Generate places mines uniformly at random using rejection sampling and
// updates the adjacency counts. Cells are not cleared first: a second call
// adds mines on top of the existing ones.
func (b *Board) Generate(rng *rand.Rand, mines int) error {
	return b.generate(rng, mines, -1)
}

// GenerateAvoiding is Generate but never places a mine on (x, y).
// Used to make the first reveal of a game safe.
func (b *Board) GenerateAvoiding(rng *rand.Rand, mines, x, y int) error {
	i, ok := b.index(x, y)
	if !ok {
		return fmt.Errorf("%w: (%d, %d) on %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.generate(rng, mines, i)
}

func (b *Board) generate(rng *rand.Rand, mines, avoid int) error {
	if mines < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMineCount, mines)
	}

	free := len(b.cells) - b.Mines()
	if avoid >= 0 && !b.cells[avoid].IsMine() {
		free--
	}
	if mines > free {
		return fmt.Errorf("%w: %d requested, %d free cells", ErrTooManyMines, mines, free)
	}

	size := len(b.cells)
	for range mines {
		i := rng.Intn(size)
		for i == avoid || b.cells[i].IsMine() {
			i = rng.Intn(size)
		}
		b.plant(i)
	}
	return nil
}

// PlaceMine plants a single mine at (x, y) and updates its neighbours.
// It returns false when the coordinate is off the board or already mined.
func (b *Board) PlaceMine(x, y int) bool {
	i, ok := b.index(x, y)
	if !ok || b.cells[i].IsMine() {
		return false
	}
	b.plant(i)
	return true
}

func (b *Board) plant(i int) {
	b.cells[i].Set(MineCode)
	b.incNeighbors(i)
}

// incNeighbors increments every in-bounds cell of the 3x3 block around i.
// The centre is included; Inc leaves the mine there untouched.
func (b *Board) incNeighbors(i int) {
	x, y := b.coords(i)
	b.incRow(x, y-1)
	b.incRow(x, y)
	b.incRow(x, y+1)
}

func (b *Board) incRow(x, y int) {
	if y < 0 || y >= b.height {
		return
	}
	for dx := -1; dx <= 1; dx++ {
		if nx := x + dx; nx >= 0 && nx < b.width {
			b.cells[y*b.width+nx].Inc()
		}
	}
}
