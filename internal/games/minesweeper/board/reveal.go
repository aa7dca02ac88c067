package board

// RevealResult is the outcome of opening cells.
type RevealResult int

const (
	RevealNone RevealResult = iota // nothing changed
	RevealSafe                     // one or more safe cells were opened
	RevealMine                     // a mine was opened
)

// Reveal opens the hidden, unflagged cell at (x, y). Opening a zero-count
// cell also opens its neighbours, repeatedly, until the open region is
// bordered by counted cells.
func (b *Board) Reveal(x, y int) RevealResult {
	i, ok := b.index(x, y)
	if !ok || b.cells[i].vis != Hidden {
		return RevealNone
	}
	return b.open(i)
}

func (b *Board) open(i int) RevealResult {
	if b.cells[i].mine {
		b.cells[i].vis = Revealed
		return RevealMine
	}

	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[j]
		if c.vis != Hidden || c.mine {
			continue
		}
		c.vis = Revealed

		if c.count == 0 {
			b.eachNeighbor(j, func(n int) {
				if b.cells[n].vis == Hidden {
					stack = append(stack, n)
				}
			})
		}
	}
	return RevealSafe
}

// Chord opens every hidden neighbour of the revealed cell at (x, y) once the
// number of flags around it matches its count.
func (b *Board) Chord(x, y int) RevealResult {
	i, ok := b.index(x, y)
	if !ok {
		return RevealNone
	}
	c := b.cells[i]
	if c.vis != Revealed || c.mine || c.count == 0 {
		return RevealNone
	}

	flagged := 0
	b.eachNeighbor(i, func(n int) {
		if b.cells[n].vis == Flagged {
			flagged++
		}
	})
	if flagged != int(c.count) {
		return RevealNone
	}

	result := RevealNone
	b.eachNeighbor(i, func(n int) {
		if b.cells[n].vis != Hidden {
			return
		}
		switch b.open(n) {
		case RevealMine:
			result = RevealMine
		case RevealSafe:
			if result == RevealNone {
				result = RevealSafe
			}
		}
	})
	return result
}

// ToggleFlag flags or unflags the hidden cell at (x, y).
// It returns false when the cell is off the board or already revealed.
func (b *Board) ToggleFlag(x, y int) bool {
	c := b.Get(x, y)
	if c == nil {
		return false
	}
	switch c.vis {
	case Hidden:
		c.vis = Flagged
	case Flagged:
		c.vis = Hidden
	default:
		return false
	}
	return true
}

// RevealMines opens every unflagged mine. Used when a game is lost.
func (b *Board) RevealMines() {
	for i := range b.cells {
		if b.cells[i].mine && b.cells[i].vis == Hidden {
			b.cells[i].vis = Revealed
		}
	}
}

// FlagMines flags every mine that is still hidden. Used when a game is won.
func (b *Board) FlagMines() {
	for i := range b.cells {
		if b.cells[i].mine && b.cells[i].vis == Hidden {
			b.cells[i].vis = Flagged
		}
	}
}

// eachNeighbor calls fn with the index of every in-bounds cell around i,
// excluding i itself.
func (b *Board) eachNeighbor(i int, fn func(n int)) {
	x, y := b.coords(i)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n, ok := b.index(x+dx, y+dy); ok {
				fn(n)
			}
		}
	}
}
