// Package state defines the level session states and the legal moves between them.
package state

// GameState represents the current state of a level session
type GameState int

const (
	StateLoading GameState = iota
	StateRunning
	StatePaused
	StateDead
	StateWon
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// transitions lists every legal move. Dead re-enters Running on retry;
// Won is terminal for the session.
var transitions = map[GameState][]GameState{
	StateLoading: {StateRunning},
	StateRunning: {StatePaused, StateDead, StateWon, StateRunning},
	StatePaused:  {StateRunning},
	StateDead:    {StateRunning},
}

// CanTransition reports whether moving from s to next is legal
func (s GameState) CanTransition(next GameState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Ticking reports whether the frame driver advances the simulation in this state
func (s GameState) Ticking() bool {
	return s == StateRunning
}

// Terminal reports whether the state hands control back to the host
func (s GameState) Terminal() bool {
	return s == StateDead || s == StateWon
}
