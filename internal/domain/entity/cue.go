package entity

// Cue is a fire-and-forget audio trigger raised by the simulation
type Cue int

const (
	CueJump Cue = iota
	CueLand
	CueDie
	CueWin
	CueCollect
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueLand:
		return "land"
	case CueDie:
		return "die"
	case CueWin:
		return "win"
	case CueCollect:
		return "collect"
	default:
		return "unknown"
	}
}
