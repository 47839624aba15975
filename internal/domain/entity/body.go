package entity

// Body is the kinematic state shared by everything that moves under physics.
// Position is the top-left of the bounding box in world units.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	Grounded bool
}

// Rect returns the body's bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// PrevBottom returns the bottom edge before the last vertical integration
func (b *Body) PrevBottom() float64 {
	return b.Y - b.VY + b.H
}

// Finite reports whether position and velocity are all finite numbers
func (b *Body) Finite() bool {
	return finite(b.X, b.Y, b.VX, b.VY)
}

// Player represents the player-controlled character
type Player struct {
	Body

	// InputLocked holds the player still until the first input after (re)spawn.
	InputLocked bool
	Facing      Facing

	SpawnX, SpawnY float64
}

// NewPlayer creates a player standing at its spawn point, waiting for input
func NewPlayer(spawnX, spawnY, w, h float64) *Player {
	p := &Player{
		Body:   Body{W: w, H: h},
		SpawnX: spawnX,
		SpawnY: spawnY,
	}
	p.Respawn()
	return p
}

// Respawn puts the player back at its spawn point, grounded and input-locked.
// Facing is left untouched.
func (p *Player) Respawn() {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.VX = 0
	p.VY = 0
	p.Grounded = true
	p.InputLocked = true
}
