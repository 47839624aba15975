package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle holds the game config together with its ordered level table
type Bundle struct {
	Game   *GameConfig
	Levels map[string]*LevelConfig
}

// Level returns the level with the given id
func (b *Bundle) Level(id string) (*LevelConfig, bool) {
	lvl, ok := b.Levels[id]
	return lvl, ok
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	if cfg.Session.StartingLives <= 0 {
		cfg.Session.StartingLives = 3
	}
	if cfg.Display.Framerate <= 0 {
		cfg.Display.Framerate = 60
	}

	return &cfg, nil
}

// LoadLevel loads and validates a level YAML file
func (l *Loader) LoadLevel(id string) (*LevelConfig, error) {
	path := "levels/" + id + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", id, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", id, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ID != id {
		return nil, fmt.Errorf("%w: file %s declares id %q", ErrInvalidLevel, path, cfg.ID)
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and every level it lists.
// A level's next must name a listed level or be empty.
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels := make(map[string]*LevelConfig, len(game.Levels))
	for _, id := range game.Levels {
		lvl, err := l.LoadLevel(id)
		if err != nil {
			return nil, err
		}
		levels[id] = lvl
	}

	for _, lvl := range levels {
		if lvl.Next == "" {
			continue
		}
		if _, ok := levels[lvl.Next]; !ok {
			return nil, fmt.Errorf("%w: %s: next level %q is not listed in game.yaml", ErrInvalidLevel, lvl.ID, lvl.Next)
		}
	}

	return &Bundle{Game: game, Levels: levels}, nil
}
