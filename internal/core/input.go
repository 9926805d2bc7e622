package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge the target left
	ActionRight          // D, Right arrow - nudge the target right
	ActionConfirm        // Enter, Space - start from the menu
	ActionRestart        // R key - play again after game over
	ActionMute           // M key - toggle audio cues
	ActionHistory        // H key - show session history
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It holds the actions triggered during the frame plus, when the pointer
// moved, the horizontal target already mapped to world units and clamped.
type InputFrame struct {
	Actions map[Action]bool

	pointerX   float64
	hasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the latest pointer target in world units.
// Later calls within the same frame overwrite earlier ones.
func (f *InputFrame) SetPointer(x float64) {
	f.pointerX = x
	f.hasPointer = true
}

// Pointer returns the pointer target and whether one was recorded.
func (f InputFrame) Pointer() (float64, bool) {
	return f.pointerX, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerX = 0
	f.hasPointer = false
}
