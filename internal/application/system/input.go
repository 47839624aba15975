package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is an abstract input the simulation understands
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionPause

	// Overlay and menu actions, never part of InputState
	ActionConfirm
	ActionRestart
	ActionMenu
	ActionQuit
)

// Bindings maps each action to the keys that trigger it
type Bindings map[Action][]ebiten.Key

// DefaultBindings returns arrow keys plus WASD, with P and Escape for pause
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
		ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
		ActionJump:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
		ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
		ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace},
		ActionRestart: {ebiten.KeyR},
		ActionMenu:    {ebiten.KeyM},
		ActionQuit:    {ebiten.KeyQ},
	}
}

// InputState holds the input sampled at the start of a frame.
// Left, Right and Up are held states; Pause is true only on the frame it was pressed.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Pause bool
}

// Held reports whether any movement key is held
func (in InputState) Held() bool {
	return in.Left || in.Right || in.Up
}

// InputSystem polls ebiten's key state once per frame
type InputSystem struct {
	bindings Bindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings Bindings) *InputSystem {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputSystem{bindings: bindings}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  s.pressed(ActionLeft),
		Right: s.pressed(ActionRight),
		Up:    s.pressed(ActionJump),
		Pause: s.justPressed(ActionPause),
	}
}

// JustPressed reports whether any key bound to the action went down this frame
func (s *InputSystem) JustPressed(a Action) bool {
	return s.justPressed(a)
}

func (s *InputSystem) pressed(a Action) bool {
	for _, k := range s.bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (s *InputSystem) justPressed(a Action) bool {
	for _, k := range s.bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
