// Package registry keeps the playable boards by id.
// The game package registers one factory per configured difficulty and the
// platform lists and creates games from here without importing it directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/minesweeper/internal/core"
)

// Game is a tick-driven board the platform can run.
// Implementations never touch the terminal; the platform feeds them
// InputFrames and displays what they draw into a core.Screen.
type Game interface {
	// ID is the difficulty id ("easy", "hard", "custom"). Results are stored under it.
	ID() string

	// Title is shown in the picker and the HUD.
	Title() string

	// Reset starts a fresh board. Called on start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that keep their board across a
// terminal resize instead of being reset.
type Resizer interface {
	Resize(screenW, screenH int)
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a factory under id.
// It panics if id is already taken.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	byID[id] = len(entries)
	entries = append(entries, entry{info: GameInfo{ID: id, Title: title}, factory: f})
}

// List returns the registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Create builds a new game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
