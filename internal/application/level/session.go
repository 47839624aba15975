// Package level runs one level session: the state machine that owns the
// player, platforms and goal, and the per-frame tick that drives them.
package level

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/application/system"
	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

var (
	// ErrInvalidWorldState means the physics step produced a non-finite
	// position or velocity. It is a defect, never recovered from.
	ErrInvalidWorldState = errors.New("invalid world state")

	// ErrIllegalTransition is returned when a trigger does not apply to the
	// current state, e.g. Retry while Running.
	ErrIllegalTransition = errors.New("illegal state transition")
)

// Options are the per-run settings shared by every level session
type Options struct {
	StartingLives     int
	PresentationDelay time.Duration
	ViewWidth         float64
	ViewHeight        float64
}

// Deps are the collaborators a session talks to. Nil members are replaced
// with no-ops.
type Deps struct {
	Cues   Cues
	Store  ProfileStore
	Nav    Navigator
	Logger *log.Logger
}

// Session is one play-through of a single level, from spawn to Dead or Won
type Session struct {
	cfg     *config.LevelConfig
	opts    Options
	level   *entity.Level
	camera  *entity.Camera
	physics *system.PhysicsSystem

	state     state.GameState
	lives     int
	frame     int
	exhausted bool

	cues   Cues
	store  ProfileStore
	nav    Navigator
	logger *log.Logger
}

// New builds a session in the Loading state. Lives are read from the store;
// a missing or zero value starts over with opts.StartingLives.
func New(cfg *config.LevelConfig, opts Options, deps Deps) (*Session, error) {
	lvl, err := system.LoadLevel(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", cfg.ID, err)
	}

	s := &Session{
		cfg:     cfg,
		opts:    opts,
		level:   lvl,
		camera:  entity.NewCamera(opts.ViewWidth, opts.ViewHeight, cfg.World.Width, cfg.World.Height),
		physics: system.NewPhysicsSystem(&cfg.Physics, cfg.World),
		state:   state.StateLoading,
		cues:    deps.Cues,
		store:   deps.Store,
		nav:     deps.Nav,
		logger:  deps.Logger,
	}
	if s.cues == nil {
		s.cues = nopCues{}
	}
	if s.nav == nil {
		s.nav = nopNavigator{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.lives = s.loadLives()
	s.camera.Follow(lvl.Player.Rect())

	return s, nil
}

func (s *Session) loadLives() int {
	if s.store == nil {
		return s.opts.StartingLives
	}
	lives, err := s.store.LoadLives()
	if err != nil {
		s.logger.Warn("failed to load lives, starting over", "err", err)
		return s.opts.StartingLives
	}
	if lives <= 0 {
		return s.opts.StartingLives
	}
	return lives
}

func (s *Session) saveLives() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveLives(s.lives); err != nil {
		s.logger.Warn("failed to save lives", "lives", s.lives, "err", err)
	}
}

// Start moves Loading to Running and starts the background loop
func (s *Session) Start() error {
	if err := s.transition(state.StateRunning); err != nil {
		return err
	}
	s.cues.BGM(true)
	s.logger.Info("level started", "level", s.cfg.ID, "lives", s.lives)
	return nil
}

// Tick advances the session by one frame. Outside Running it does nothing
// except honour a pause press while Paused. Order within a frame is fixed:
// frame counter, camera, physics, goal.
func (s *Session) Tick(in system.InputState) (state.GameState, error) {
	if in.Pause && (s.state == state.StateRunning || s.state == state.StatePaused) {
		s.TogglePause()
		return s.state, nil
	}
	if !s.state.Ticking() {
		return s.state, nil
	}

	player := s.level.Player

	s.frame++
	s.camera.Follow(player.Rect())

	res := s.physics.Step(player, s.level.Platforms, in)
	if !player.Finite() {
		return s.state, fmt.Errorf("%w: level %s frame %d: position (%v, %v) velocity (%v, %v)",
			ErrInvalidWorldState, s.cfg.ID, s.frame, player.X, player.Y, player.VX, player.VY)
	}
	if res.Jumped {
		s.cues.Play(entity.CueJump)
	}
	if res.Landed {
		s.cues.Play(entity.CueLand)
	}

	if res.Fell {
		s.die()
		return s.state, nil
	}

	if s.level.Goal.TryCollect(player.Rect(), s.frame) {
		s.win()
	}

	return s.state, nil
}

func (s *Session) die() {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.exhausted = true
	}
	s.saveLives()

	s.cues.Play(entity.CueDie)
	s.cues.BGM(false)
	s.level.Reset()
	s.state = state.StateDead

	s.logger.Info("player fell", "level", s.cfg.ID, "lives", s.lives, "frame", s.frame, "exhausted", s.exhausted)
}

func (s *Session) win() {
	s.cues.Play(entity.CueCollect)
	s.cues.Play(entity.CueWin)
	s.cues.BGM(false)
	s.state = state.StateWon

	s.logger.Info("goal collected", "level", s.cfg.ID, "next", s.cfg.Next, "frame", s.frame)
	s.nav.Advance(s.cfg.Next, s.opts.PresentationDelay)
}

// TogglePause flips Running and Paused. Other states are left alone.
func (s *Session) TogglePause() {
	switch s.state {
	case state.StateRunning:
		s.state = state.StatePaused
		s.cues.BGM(false)
		s.logger.Debug("paused", "level", s.cfg.ID, "frame", s.frame)
	case state.StatePaused:
		s.state = state.StateRunning
		s.cues.BGM(true)
		s.logger.Debug("resumed", "level", s.cfg.ID, "frame", s.frame)
	}
}

// Retry continues after a death. With no lives left it routes to the menu
// and the session stays Dead.
func (s *Session) Retry() error {
	if s.state != state.StateDead {
		return fmt.Errorf("%w: retry from %s", ErrIllegalTransition, s.state)
	}
	if s.exhausted {
		s.logger.Info("out of lives", "level", s.cfg.ID)
		s.nav.ReturnToMenu()
		return nil
	}

	s.level.Reset()
	s.state = state.StateRunning
	s.cues.BGM(true)
	s.logger.Info("retry", "level", s.cfg.ID, "lives", s.lives)
	return nil
}

// Restart replays the level from scratch while paused. Platforms return to
// their configured phase and no life is lost.
func (s *Session) Restart() error {
	if s.state != state.StatePaused {
		return fmt.Errorf("%w: restart from %s", ErrIllegalTransition, s.state)
	}
	lvl, err := system.LoadLevel(s.cfg)
	if err != nil {
		return fmt.Errorf("failed to reload level %s: %w", s.cfg.ID, err)
	}

	s.level = lvl
	s.frame = 0
	s.camera.Follow(lvl.Player.Rect())
	s.state = state.StateRunning
	s.cues.BGM(true)
	s.logger.Info("level restarted", "level", s.cfg.ID, "lives", s.lives)
	return nil
}

// Quit leaves for the menu from the pause overlay
func (s *Session) Quit() {
	s.cues.BGM(false)
	s.nav.ReturnToMenu()
}

// Resize updates the camera viewport to the current canvas size
func (s *Session) Resize(w, h float64) {
	s.camera.Resize(w, h)
}

func (s *Session) transition(next state.GameState) error {
	if !s.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.state, next)
	}
	s.state = next
	return nil
}

// State returns the current session state
func (s *Session) State() state.GameState { return s.state }

// Lives returns the remaining lives
func (s *Session) Lives() int { return s.lives }

// Frame returns the number of simulated frames
func (s *Session) Frame() int { return s.frame }

// Exhausted reports whether the last death used up the final life
func (s *Session) Exhausted() bool { return s.exhausted }

// Level returns the simulated entities
func (s *Session) Level() *entity.Level { return s.level }

// Camera returns the viewport
func (s *Session) Camera() *entity.Camera { return s.camera }

// Config returns the level record the session was built from
func (s *Session) Config() *config.LevelConfig { return s.cfg }
