package minesweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting     GameStateType = "waiting" // no cell revealed yet
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Seconds  int
	CursorX  int
	CursorY  int
	Mines    int
	Flags    int
	Revealed int
	Layout   string // one character per cell, row-major: '*' mine, '0'..'8' count
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.lost:
		state = StateLost
	case g.paused:
		state = StatePaused
	case !g.generated:
		state = StateWaiting
	}

	layout := make([]byte, 0, g.board.Len())
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			c := g.board.Get(x, y)
			if c.IsMine() {
				layout = append(layout, '*')
			} else {
				layout = append(layout, byte('0'+c.Count()))
			}
		}
	}

	cx, cy := g.board.Cursor()
	return Snapshot{
		Tick:     g.tick,
		Seconds:  g.Seconds(),
		CursorX:  cx,
		CursorY:  cy,
		Mines:    g.board.Mines(),
		Flags:    g.board.Flags(),
		Revealed: g.board.Revealed(),
		Layout:   string(layout),
		State:    state,
	}
}
