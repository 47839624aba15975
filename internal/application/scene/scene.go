// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing, victory) implements the Scene
// interface to handle its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (title, playing, victory)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60). The simulation is
	// frame-coupled and ignores it.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()

	// Name identifies the scene in logs.
	Name() string
}

// MenuKind selects which menu screen to show
type MenuKind int

const (
	MenuTitle MenuKind = iota
	MenuVictory
)

// String returns the string representation of the menu kind
func (k MenuKind) String() string {
	switch k {
	case MenuTitle:
		return "title"
	case MenuVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Director builds scenes by name, so scenes can lead to each other
// without importing each other.
type Director interface {
	// Level returns a playing scene for the given level id.
	Level(id string) (Scene, error)

	// FirstLevel returns the id of the level "start" leads to.
	FirstLevel() string

	// Menu returns the menu scene of the given kind.
	Menu(kind MenuKind) Scene
}
