package entity

import "math"

// Camera is the visible window onto the world.
// X, Y is the top-left of the window in world coordinates.
type Camera struct {
	X, Y          float64
	Width, Height float64

	WorldWidth, WorldHeight float64
}

// NewCamera creates a camera with the given viewport over a world
func NewCamera(viewW, viewH, worldW, worldH float64) *Camera {
	return &Camera{
		Width:       viewW,
		Height:      viewH,
		WorldWidth:  worldW,
		WorldHeight: worldH,
	}
}

// Resize updates the viewport size (the canvas size may change between frames)
func (c *Camera) Resize(w, h float64) {
	c.Width = w
	c.Height = h
}

// Follow centers the camera on target, then clamps each axis so the
// window stays inside the world. A world smaller than the viewport pins
// that axis to 0.
func (c *Camera) Follow(target Rect) {
	c.X = clampAxis(target.CenterX()-c.Width/2, c.WorldWidth-c.Width)
	c.Y = clampAxis(target.CenterY()-c.Height/2, c.WorldHeight-c.Height)
}

// ToScreen converts world coordinates to screen coordinates
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// Visible reports whether r intersects the viewport
func (c *Camera) Visible(r Rect) bool {
	return Overlaps(r, Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height})
}

func clampAxis(v, upper float64) float64 {
	return math.Max(0, math.Min(v, upper))
}
