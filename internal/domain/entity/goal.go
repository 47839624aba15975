package entity

import "math"

// GoalCollision selects which rectangle the pickup test uses
type GoalCollision int

const (
	// GoalCollisionBobbed tests against the animated (bobbing) position
	GoalCollisionBobbed GoalCollision = iota
	// GoalCollisionResting tests against the goal's resting position
	GoalCollisionResting
)

// ParseGoalCollision converts a config value into a GoalCollision.
// Empty defaults to bobbed.
func ParseGoalCollision(s string) (GoalCollision, bool) {
	switch s {
	case "", "bobbed":
		return GoalCollisionBobbed, true
	case "resting":
		return GoalCollisionResting, true
	default:
		return GoalCollisionBobbed, false
	}
}

// Goal is the per-level collectible ("mask")
type Goal struct {
	X, Y float64
	W, H float64

	BobAmplitude float64
	BobFrequency float64 // radians per frame
	Collision    GoalCollision

	Collected bool
}

// BobOffset returns the vertical display offset at the given frame
func (g *Goal) BobOffset(frame int) float64 {
	return math.Sin(float64(frame)*g.BobFrequency) * g.BobAmplitude
}

// DisplayRect returns the bobbed rectangle used for drawing
func (g *Goal) DisplayRect(frame int) Rect {
	return Rect{X: g.X, Y: g.Y + g.BobOffset(frame), W: g.W, H: g.H}
}

// HitRect returns the rectangle used for pickup at the given frame
func (g *Goal) HitRect(frame int) Rect {
	if g.Collision == GoalCollisionResting {
		return Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
	}
	return g.DisplayRect(frame)
}

// TryCollect marks the goal collected if r overlaps it.
// Returns true only on the transition; a collected goal never reports again.
func (g *Goal) TryCollect(r Rect, frame int) bool {
	if g.Collected {
		return false
	}
	if !Overlaps(r, g.HitRect(frame)) {
		return false
	}
	g.Collected = true
	return true
}
