package entity

import "math"

// Oscillation describes horizontal back-and-forth motion around BaseX
type Oscillation struct {
	Range float64 // Maximum distance from BaseX before reversing
	DX    float64 // Signed per-frame displacement
	BaseX float64
}

// Platform is a one-way landing surface, optionally oscillating
type Platform struct {
	X, Y   float64
	W, H   float64
	Sprite string

	Oscillation *Oscillation
}

// Rect returns the platform's bounding box
func (p *Platform) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Moving reports whether the platform oscillates
func (p *Platform) Moving() bool {
	return p.Oscillation != nil && p.Oscillation.DX != 0
}

// Advance moves an oscillating platform by one frame.
// The direction flips once the platform has travelled past Range, so
// |X - BaseX| never exceeds Range + |DX|.
func (p *Platform) Advance() {
	if !p.Moving() {
		return
	}
	o := p.Oscillation
	p.X += o.DX
	if math.Abs(p.X-o.BaseX) > o.Range {
		o.DX = -o.DX
	}
}
