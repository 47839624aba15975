package system

import (
	"fmt"

	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into fresh level entities.
// Every call builds new entities, so a restarted level starts from its
// configured platform phases.
func LoadLevel(cfg *config.LevelConfig) (*entity.Level, error) {
	collision, ok := entity.ParseGoalCollision(cfg.Goal.Collision)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown goal collision %q", config.ErrInvalidLevel, cfg.ID, cfg.Goal.Collision)
	}

	platforms := make([]*entity.Platform, len(cfg.Platforms))
	for i, pc := range cfg.Platforms {
		p := &entity.Platform{
			X:      pc.X,
			Y:      pc.Y,
			W:      pc.W,
			H:      pc.H,
			Sprite: pc.Sprite,
		}
		if pc.Oscillation != nil {
			p.Oscillation = &entity.Oscillation{
				Range: pc.Oscillation.Range,
				DX:    pc.Oscillation.DX,
				BaseX: pc.X,
			}
		}
		platforms[i] = p
	}

	return &entity.Level{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Next:      cfg.Next,
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Player:    entity.NewPlayer(cfg.Player.Spawn.X, cfg.Player.Spawn.Y, cfg.Player.Width, cfg.Player.Height),
		Platforms: platforms,
		Goal: &entity.Goal{
			X:            cfg.Goal.X,
			Y:            cfg.Goal.Y,
			W:            cfg.Goal.W,
			H:            cfg.Goal.H,
			BobAmplitude: cfg.Goal.Bob.Amplitude,
			BobFrequency: cfg.Goal.Bob.Frequency,
			Collision:    collision,
		},
	}, nil
}
