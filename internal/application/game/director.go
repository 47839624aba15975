package game

import (
	"fmt"

	"github.com/younwookim/masks/internal/application/scene"
	"github.com/younwookim/masks/internal/application/scene/menu"
	"github.com/younwookim/masks/internal/application/scene/playing"
	"github.com/younwookim/masks/internal/application/system"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// Director builds every scene of a run from the loaded config bundle
type Director struct {
	bundle *config.Bundle
	deps   playing.Deps
}

// NewDirector creates a director. deps.Director is set to the director itself.
func NewDirector(bundle *config.Bundle, deps playing.Deps) *Director {
	d := &Director{bundle: bundle}
	if deps.Input == nil {
		deps.Input = system.NewInputSystem(nil)
	}
	deps.Game = bundle.Game
	deps.Director = d
	d.deps = deps
	return d
}

// Level implements scene.Director
func (d *Director) Level(id string) (scene.Scene, error) {
	cfg, ok := d.bundle.Level(id)
	if !ok {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return playing.New(cfg, d.deps)
}

// FirstLevel implements scene.Director
func (d *Director) FirstLevel() string {
	return d.bundle.Game.FirstLevel()
}

// Menu implements scene.Director
func (d *Director) Menu(kind scene.MenuKind) scene.Scene {
	return menu.New(kind, d.bundle.Game.Display.Title, d.deps.Input, d)
}
