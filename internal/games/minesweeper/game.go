// Package minesweeper adapts the board engine to the platform's game loop:
// it maps input actions onto the board, keeps the game clock and decides
// when a game is won or lost.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/minesweeper/internal/registry"
)

const (
	hudHeight = 2 // HUD line plus separator
	cellWidth = 3 // "[x]" per cell
)

// Game implements one minesweeper round for a fixed difficulty.
type Game struct {
	diff  config.Difficulty
	rng   *rand.Rand
	board *board.Board

	generated bool // mines placed (after the first reveal)
	tick      uint64
	ticks     int // clock ticks since the first reveal
	tickRate  int

	lost     bool
	won      bool
	paused   bool
	tooSmall bool

	// Screen dimensions
	screenW int
	screenH int
}

// NewGame creates a game for the given difficulty. Call Reset before use.
// The difficulty must pass config validation.
func NewGame(d config.Difficulty) (*Game, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return newGame(d), nil
}

func newGame(d config.Difficulty) *Game {
	return &Game{
		diff:  d,
		board: board.New(d.Width, d.Height),
	}
}

// Register adds one factory per configured difficulty to the registry.
// Difficulties already registered are left alone; invalid ones are skipped.
func Register(cfg config.Config) {
	for _, d := range cfg.Difficulties {
		if registry.Exists(d.ID) {
			continue
		}
		if err := d.Validate(); err != nil {
			log.Warn("skipping difficulty", "id", d.ID, "error", err)
			continue
		}
		registry.Register(d.ID, func() registry.Game {
			return newGame(d)
		})
	}
}

// ID returns the difficulty identifier.
func (g *Game) ID() string {
	return g.diff.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	name := g.diff.Name
	if name == "" {
		name = g.diff.ID
	}
	return fmt.Sprintf("%s (%dx%d, %d mines)", name, g.diff.Width, g.diff.Height, g.diff.Mines)
}

// Difficulty returns the board preset this game plays.
func (g *Game) Difficulty() config.Difficulty {
	return g.diff
}

// Board exposes the underlying grid.
func (g *Game) Board() *board.Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = board.New(g.diff.Width, g.diff.Height)
	g.generated = false
	g.tick = 0
	g.ticks = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.lost = false
	g.won = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.tooSmall = screenW < g.requiredWidth() || screenH < g.requiredHeight()
}

func (g *Game) requiredWidth() int {
	return g.board.Width()*cellWidth + 2
}

func (g *Game) requiredHeight() int {
	return g.board.Height() + 2 + hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	if g.generated && !g.over() {
		g.ticks++
	}

	return core.StepResult{State: g.State()}
}

// processInput applies cursor movement first, then at most one board action.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.board.MoveUp()
	case input.Has(core.ActionDown):
		g.board.MoveDown()
	}
	switch {
	case input.Has(core.ActionLeft):
		g.board.MoveLeft()
	case input.Has(core.ActionRight):
		g.board.MoveRight()
	}

	switch {
	case input.Has(core.ActionReveal):
		g.reveal()
	case input.Has(core.ActionFlag):
		x, y := g.board.Cursor()
		g.board.ToggleFlag(x, y)
	}
}

// reveal opens the cell under the cursor, chording when it is already open.
func (g *Game) reveal() {
	x, y := g.board.Cursor()

	if !g.generated {
		c := g.board.Get(x, y)
		if c == nil || c.IsFlagged() {
			return
		}
		if err := g.board.GenerateAvoiding(g.rng, g.diff.Mines, x, y); err != nil {
			log.Error("cannot place mines", "difficulty", g.diff.ID, "error", err)
			return
		}
		g.generated = true
	}

	var result board.RevealResult
	if c := g.board.Get(x, y); c != nil && c.IsRevealed() {
		result = g.board.Chord(x, y)
	} else {
		result = g.board.Reveal(x, y)
	}

	switch {
	case result == board.RevealMine:
		g.lost = true
		g.board.RevealMines()
	case g.board.Cleared():
		g.won = true
		g.board.FlagMines()
	}
}

func (g *Game) over() bool {
	return g.lost || g.won
}

// MinesLeft returns the number of mines minus placed flags.
// It goes negative when the player over-flags.
func (g *Game) MinesLeft() int {
	return g.diff.Mines - g.board.Flags()
}

// Seconds returns the whole seconds on the game clock.
func (g *Game) Seconds() int {
	if g.tickRate <= 0 {
		return 0
	}
	return g.ticks / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Seconds(),
		GameOver: g.over(),
		Won:      g.won,
		Paused:   g.paused,
	}
}
