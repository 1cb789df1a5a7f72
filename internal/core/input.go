package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionTapRed
	ActionTapYellow
	ActionTapBlue
	ActionTapPurple
	ActionTapOrange
	ActionTapGreen
	ActionStart   // Space, Enter - start a round
	ActionPause   // P - pause/unpause
	ActionRestart // R - restart after game over
	ActionBack    // B, Esc - back to menu
	ActionQuit    // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionTapRed:    "TapRed",
	ActionTapYellow: "TapYellow",
	ActionTapBlue:   "TapBlue",
	ActionTapPurple: "TapPurple",
	ActionTapOrange: "TapOrange",
	ActionTapGreen:  "TapGreen",
	ActionStart:     "Start",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// TapActions lists the color tap actions in display order.
func TapActions() []Action {
	return []Action{
		ActionTapRed, ActionTapYellow, ActionTapBlue,
		ActionTapPurple, ActionTapOrange, ActionTapGreen,
	}
}

// InputFrame holds every action triggered during one tick. Several taps
// may land in the same frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
