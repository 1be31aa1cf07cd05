package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, Up, W - give the bird an upward impulse
	ActionStart        // Space, Up, W - leave the menu and start a round
	ActionQuit         // Q, Ctrl+C - exit (handled by the platform, never by the simulation)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions whose key went down during one simulation tick.
// A frame only ever contains press edges, so it doubles as the
// "just pressed this tick" oracle the simulation samples.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// JustPressed implements the simulation's input oracle.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// EdgeTracker converts level samples ("is the key held this tick") into
// press edges. Hosts that can observe held keys feed it once per tick.
type EdgeTracker struct {
	held map[Action]bool
}

// NewEdgeTracker creates a tracker with every action released.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{held: make(map[Action]bool)}
}

// Sample records the held state of every action in down for this tick and
// returns a frame containing only the actions that went from released to held.
// Actions absent from down are considered released.
func (e *EdgeTracker) Sample(down map[Action]bool) InputFrame {
	frame := NewInputFrame()
	for a, isDown := range down {
		if isDown && !e.held[a] {
			frame.Set(a)
		}
	}
	for a := range e.held {
		if !down[a] {
			delete(e.held, a)
		}
	}
	for a, isDown := range down {
		if isDown {
			e.held[a] = true
		}
	}
	return frame
}
