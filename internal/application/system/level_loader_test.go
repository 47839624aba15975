package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

func createTestLevelConfig() *config.LevelConfig {
	return &config.LevelConfig{
		ID:    "blue",
		Name:  "Water",
		Next:  "desert",
		World: config.WorldConfig{Width: 2000, Height: 2000, FallMargin: 100},
		Player: config.PlayerConfig{
			Spawn:  config.PositionConfig{X: 100, Y: 1850},
			Width:  80,
			Height: 52,
		},
		Platforms: []config.PlatformConfig{
			{X: 0, Y: 1950, W: 600, H: 50, Sprite: "ground"},
			{X: 900, Y: 1500, W: 180, H: 24, Oscillation: &config.OscillationConfig{Range: 150, DX: -3}},
		},
		Goal: config.GoalConfig{
			X: 1650, Y: 150, W: 60, H: 60,
			Bob: config.BobConfig{Amplitude: 10, Frequency: 0.05},
		},
	}
}

func TestLoadLevel(t *testing.T) {
	lvl, err := LoadLevel(createTestLevelConfig())
	require.NoError(t, err)

	assert.Equal(t, "blue", lvl.ID)
	assert.Equal(t, "Water", lvl.Name)
	assert.Equal(t, "desert", lvl.Next)
	assert.Equal(t, entity.Rect{W: 2000, H: 2000}, lvl.Bounds())

	require.NotNil(t, lvl.Player)
	assert.Equal(t, 100.0, lvl.Player.X)
	assert.Equal(t, 1850.0, lvl.Player.Y)
	assert.True(t, lvl.Player.Grounded)
	assert.True(t, lvl.Player.InputLocked)

	require.Len(t, lvl.Platforms, 2)
	assert.Equal(t, "ground", lvl.Platforms[0].Sprite)
	assert.False(t, lvl.Platforms[0].Moving())
	require.NotNil(t, lvl.Platforms[1].Oscillation)
	assert.Equal(t, 900.0, lvl.Platforms[1].Oscillation.BaseX)
	assert.Equal(t, -3.0, lvl.Platforms[1].Oscillation.DX)

	require.NotNil(t, lvl.Goal)
	assert.Equal(t, entity.GoalCollisionBobbed, lvl.Goal.Collision)
	assert.False(t, lvl.Goal.Collected)
}

func TestLoadLevel_FreshEntities(t *testing.T) {
	cfg := createTestLevelConfig()

	first, err := LoadLevel(cfg)
	require.NoError(t, err)
	first.Platforms[1].Advance()
	first.Goal.Collected = true

	second, err := LoadLevel(cfg)
	require.NoError(t, err)

	assert.Equal(t, 900.0, second.Platforms[1].X)
	assert.False(t, second.Goal.Collected)
	assert.Equal(t, 900.0, cfg.Platforms[1].X, "config is never mutated")
}

func TestLoadLevel_GoalCollision(t *testing.T) {
	cfg := createTestLevelConfig()
	cfg.Goal.Collision = "resting"

	lvl, err := LoadLevel(cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.GoalCollisionResting, lvl.Goal.Collision)

	cfg.Goal.Collision = "sideways"
	_, err = LoadLevel(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidLevel)
}
