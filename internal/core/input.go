package core

// Action is a semantic player intent, decoupled from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionReveal         // Space, Enter: reveal (or chord) the cell under the cursor
	ActionFlag           // F, M: toggle a flag on the cell under the cursor
	ActionConfirm        // Enter in menus
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Reveal",
	"Flag", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
// ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
