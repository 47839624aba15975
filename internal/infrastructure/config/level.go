package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level record fails validation
var ErrInvalidLevel = errors.New("invalid level config")

// LevelConfig is the root config for levels/<id>.yaml.
// Everything that differed between the hand-written levels lives here.
type LevelConfig struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Next      string           `yaml:"next"` // Empty means the run is complete
	World     WorldConfig      `yaml:"world"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Platforms []PlatformConfig `yaml:"platforms"`
	Goal      GoalConfig       `yaml:"goal"`
	Theme     ThemeConfig      `yaml:"theme"`
}

type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fallMargin"` // Death once player.y > height + fallMargin
}

type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	Speed            float64 `yaml:"speed"`
	JumpForce        float64 `yaml:"jumpForce"`
	LandingTolerance float64 `yaml:"landingTolerance"`
	LandCueVelocity  float64 `yaml:"landCueVelocity"`
}

type PlayerConfig struct {
	Spawn  PositionConfig `yaml:"spawn"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Sprite string         `yaml:"sprite"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Sprite string  `yaml:"sprite"`

	Oscillation *OscillationConfig `yaml:"oscillation,omitempty"`
}

type OscillationConfig struct {
	Range float64 `yaml:"range"`
	DX    float64 `yaml:"dx"`
}

type GoalConfig struct {
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	W         float64   `yaml:"w"`
	H         float64   `yaml:"h"`
	Sprite    string    `yaml:"sprite"`
	Bob       BobConfig `yaml:"bob"`
	Collision string    `yaml:"collision"` // "bobbed" (default) or "resting"
}

type BobConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"` // radians per frame
}

type ThemeConfig struct {
	Background string `yaml:"background"` // Background image name
	Sky        string `yaml:"sky"`        // Fallback fill colour (#rrggbb)
	Platform   string `yaml:"platform"`
	Player     string `yaml:"player"`
	Goal       string `yaml:"goal"`
	Vignette   string `yaml:"vignette"` // #rrggbbaa overlay tint
	DeathTitle string `yaml:"deathTitle"`
}

// Validate checks the values the engine relies on
func (c *LevelConfig) Validate() error {
	switch {
	case c.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: %s: world size must be positive", ErrInvalidLevel, c.ID)
	case c.Physics.Friction <= 0 || c.Physics.Friction > 1:
		return fmt.Errorf("%w: %s: friction must be in (0, 1]", ErrInvalidLevel, c.ID)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: %s: gravity must be positive", ErrInvalidLevel, c.ID)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: %s: player size must be positive", ErrInvalidLevel, c.ID)
	case len(c.Platforms) == 0:
		return fmt.Errorf("%w: %s: no platforms", ErrInvalidLevel, c.ID)
	case c.Goal.W <= 0 || c.Goal.H <= 0:
		return fmt.Errorf("%w: %s: goal size must be positive", ErrInvalidLevel, c.ID)
	}
	for i, p := range c.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: %s: platform %d size must be positive", ErrInvalidLevel, c.ID, i)
		}
		if p.Oscillation != nil && p.Oscillation.Range < 0 {
			return fmt.Errorf("%w: %s: platform %d oscillation range is negative", ErrInvalidLevel, c.ID, i)
		}
	}
	if c.Goal.Collision != "" && c.Goal.Collision != "bobbed" && c.Goal.Collision != "resting" {
		return fmt.Errorf("%w: %s: unknown goal collision %q", ErrInvalidLevel, c.ID, c.Goal.Collision)
	}
	return nil
}

// ApplyDefaults fills the values every shipped level shares
func (c *LevelConfig) ApplyDefaults() {
	if c.World.FallMargin == 0 {
		c.World.FallMargin = 100
	}
	if c.Physics.LandingTolerance == 0 {
		c.Physics.LandingTolerance = 10
	}
	if c.Physics.LandCueVelocity == 0 {
		c.Physics.LandCueVelocity = 4
	}
	if c.Name == "" {
		c.Name = c.ID
	}
}
