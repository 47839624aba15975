// Package menu provides the title and victory screens.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/masks/internal/application/scene"
	"github.com/younwookim/masks/internal/application/system"
)

var (
	colorTitleBG   = color.RGBA{20, 16, 36, 255}
	colorVictoryBG = color.RGBA{36, 28, 8, 255}
)

// Input is the subset of the input system a menu needs
type Input interface {
	JustPressed(a system.Action) bool
}

// Menu is a static screen that waits for the player to choose
type Menu struct {
	kind     scene.MenuKind
	title    string
	input    Input
	director scene.Director
}

// New creates a menu of the given kind
func New(kind scene.MenuKind, title string, input Input, director scene.Director) *Menu {
	return &Menu{
		kind:     kind,
		title:    title,
		input:    input,
		director: director,
	}
}

// Update implements scene.Scene. Confirm on the title starts the first
// level; on the victory screen it returns to the title.
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if m.kind == scene.MenuTitle && m.input.JustPressed(system.ActionQuit) {
		return nil, ebiten.Termination
	}
	if !m.input.JustPressed(system.ActionConfirm) {
		return nil, nil
	}

	if m.kind == scene.MenuVictory {
		return m.director.Menu(scene.MenuTitle), nil
	}

	first := m.director.FirstLevel()
	if first == "" {
		return nil, fmt.Errorf("no levels configured")
	}
	return m.director.Level(first)
}

// Text returns what the menu shows
func (m *Menu) Text() string {
	if m.kind == scene.MenuVictory {
		return "ALL FOUR MASKS COLLECTED\n\nThe realms are at peace.\n\nEnter: main menu"
	}
	return m.title + "\n\nEnter: start\nQ: quit"
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	bg := colorTitleBG
	if m.kind == scene.MenuVictory {
		bg = colorVictoryBG
	}
	screen.Fill(bg)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, m.Text(), w/2-80, h/2-30)
}

func (m *Menu) OnEnter() {}

func (m *Menu) OnExit() {}

// Name implements scene.Scene
func (m *Menu) Name() string {
	return "menu:" + m.kind.String()
}
