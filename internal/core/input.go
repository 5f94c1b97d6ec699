package core

// Action is a semantic visualizer command, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space, P - toggle automatic stepping
	ActionStep           // N, Right - advance one step while paused
	ActionFaster         // +, Up - more steps per frame
	ActionSlower         // -, Down - fewer steps per frame
	ActionRestart        // R - rebuild the animation from its input
	ActionFinish         // F - run to completion
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionRestart:
		return "Restart"
	case ActionFinish:
		return "Finish"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two visualizer frames.
type InputFrame struct {
	Actions map[Action]bool
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
