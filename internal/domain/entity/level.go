package entity

// Level is everything one session simulates: the world bounds and the
// entities created once at level load.
type Level struct {
	ID   string
	Name string
	Next string

	Width, Height float64

	Player    *Player
	Platforms []*Platform
	Goal      *Goal
}

// Bounds returns the world rectangle
func (l *Level) Bounds() Rect {
	return Rect{W: l.Width, H: l.Height}
}

// Reset returns the player to spawn and un-collects the goal.
// Platforms keep their current phase.
func (l *Level) Reset() {
	l.Player.Respawn()
	l.Goal.Collected = false
}
