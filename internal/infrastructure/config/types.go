package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Session SessionConfig `yaml:"session"`
	Audio   AudioConfig   `yaml:"audio"`
	Levels  []string      `yaml:"levels"` // Play order; the first entry is where "start" leads
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type SessionConfig struct {
	StartingLives       int `yaml:"startingLives"`
	PresentationDelayMs int `yaml:"presentationDelayMs"` // Pause between goal pickup and the next level
}

type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"` // 0..1 linear
	BufferMs   int     `yaml:"bufferMs"`
}

// FirstLevel returns the id of the first level, or "" if none are listed
func (c *GameConfig) FirstLevel() string {
	if len(c.Levels) == 0 {
		return ""
	}
	return c.Levels[0]
}
