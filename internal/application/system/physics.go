package system

import (
	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// snapThreshold is the speed below which friction stops the player outright
const snapThreshold = 0.1

// StepResult reports what happened during one physics step
type StepResult struct {
	Jumped bool // Jump started this frame
	Landed bool // Landed hard enough to play the land cue
	Fell   bool // Dropped below the world; the caller handles death
}

// PhysicsSystem advances the player and platforms by one frame.
// There is no delta time: one call is one frame.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	world  config.WorldConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, world config.WorldConfig) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		world:  world,
	}
}

// Step runs one frame of movement, gravity, platform landing and world clamping
func (s *PhysicsSystem) Step(player *entity.Player, platforms []*entity.Platform, input InputState) StepResult {
	var res StepResult

	// The first held key arms physics
	if player.InputLocked && input.Held() {
		player.InputLocked = false
	}

	if !player.InputLocked {
		s.applyHorizontal(player, input)
		res.Jumped = s.applyJump(player, input)

		// No terminal velocity
		if !player.Grounded {
			player.VY += s.config.Gravity
		}
	}

	player.X += player.VX
	player.Y += player.VY

	// Grounded must be re-earned every frame by landing on something
	player.Grounded = false

	for _, p := range platforms {
		p.Advance()
		if s.landsOn(player, p) {
			impact := player.VY
			player.Y = p.Y - player.H
			player.VY = 0
			player.Grounded = true
			if impact >= s.config.LandCueVelocity {
				res.Landed = true
			}
		}
	}

	s.clampToWorld(player)

	if player.Y > s.world.Height+s.world.FallMargin {
		res.Fell = true
	}

	return res
}

// applyHorizontal sets velocity from held keys, or decays it with friction
func (s *PhysicsSystem) applyHorizontal(player *entity.Player, input InputState) {
	switch {
	case input.Right:
		player.VX = s.config.Speed
		player.Facing = entity.FacingRight
	case input.Left:
		player.VX = -s.config.Speed
		player.Facing = entity.FacingLeft
	default:
		player.VX *= s.config.Friction
		if absFloat(player.VX) < snapThreshold {
			player.VX = 0
		}
	}
}

// applyJump starts a jump if the player is standing on something
func (s *PhysicsSystem) applyJump(player *entity.Player, input InputState) bool {
	if !input.Up || !player.Grounded {
		return false
	}
	player.VY = -s.config.JumpForce
	player.Grounded = false
	return true
}

// landsOn reports whether the player came down onto the top of p this frame.
// Platforms are one-way: side and underside contacts are ignored.
func (s *PhysicsSystem) landsOn(player *entity.Player, p *entity.Platform) bool {
	if !entity.Overlaps(player.Rect(), p.Rect()) {
		return false
	}
	return player.VY > 0 && player.PrevBottom() <= p.Y+s.config.LandingTolerance
}

// clampToWorld keeps the player inside the horizontal world bounds
func (s *PhysicsSystem) clampToWorld(player *entity.Player) {
	if player.X < 0 {
		player.X = 0
	}
	if maxX := s.world.Width - player.W; player.X > maxX {
		player.X = maxX
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
