package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minesweeper/internal/core"
)

// gameKeys lists the in-game bindings. Keys are tea.KeyMsg.String() values.
var gameKeys = []struct {
	action core.Action
	keys   []string
}{
	{core.ActionQuit, []string{"ctrl+c", "q"}},
	{core.ActionUp, []string{"w", "k", "up"}},
	{core.ActionDown, []string{"s", "j", "down"}},
	{core.ActionLeft, []string{"a", "h", "left"}},
	{core.ActionRight, []string{"d", "l", "right"}},
	{core.ActionReveal, []string{" ", "enter"}},
	{core.ActionFlag, []string{"f", "m"}},
	{core.ActionBack, []string{"b", "esc"}},
	{core.ActionPause, []string{"p"}},
	{core.ActionRestart, []string{"r"}},
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = []struct {
	action MenuAction
	keys   []string
}{
	{MenuActionQuit, []string{"ctrl+c", "q"}},
	{MenuActionUp, []string{"w", "k", "up"}},
	{MenuActionDown, []string{"s", "j", "down"}},
	{MenuActionSelect, []string{"enter", " "}},
	{MenuActionBack, []string{"b", "esc"}},
	{MenuActionScoreboard, []string{"tab"}},
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}
	for _, b := range gameKeys {
		for _, k := range b.keys {
			km.game[k] = b.action
		}
	}
	for _, b := range menuKeys {
		for _, k := range b.keys {
			km.menu[k] = b.action
		}
	}
	return km
}

// MapKey translates a key to a game action (ActionNone when unbound)
// and reports whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
