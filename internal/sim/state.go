package sim

// GameState is the top-level mode of the simulation.
type GameState int

const (
	StateMenu    GameState = iota // initial
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Machine owns the game state. Transition is the only way to change it.
type Machine struct {
	state       GameState
	transitions int
}

// State returns the current state.
func (m *Machine) State() GameState {
	return m.state
}

// Transitions returns how many state changes have happened.
func (m *Machine) Transitions() int {
	return m.transitions
}

// Transition moves to next and reports whether the state actually changed.
// Only Menu->Playing and Playing->Menu are valid; anything else is a no-op.
func (m *Machine) Transition(next GameState) bool {
	switch {
	case m.state == StateMenu && next == StatePlaying,
		m.state == StatePlaying && next == StateMenu:
		m.state = next
		m.transitions++
		return true
	default:
		return false
	}
}
