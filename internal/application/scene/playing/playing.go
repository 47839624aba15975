// Package playing provides the main gameplay scene: it hosts one level
// session, draws it and turns its navigation requests into scene changes.
package playing

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/masks/internal/application/level"
	"github.com/younwookim/masks/internal/application/replay"
	"github.com/younwookim/masks/internal/application/scene"
	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/application/system"
	"github.com/younwookim/masks/internal/infrastructure/asset"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// Input is what the scene polls once per frame
type Input interface {
	GetInput() system.InputState
	JustPressed(a system.Action) bool
}

// Deps are shared by every playing scene of a run
type Deps struct {
	Game      *config.GameConfig
	Input     Input
	Assets    *asset.Provider
	Cues      level.Cues
	Store     level.ProfileStore
	Director  scene.Director
	Logger    *log.Logger
	RecordDir string // Save each session's input here when set
}

type navKind int

const (
	navLevel navKind = iota
	navVictory
	navMenu
)

// pendingNav is a navigation request waiting out its presentation delay
type pendingNav struct {
	kind       navKind
	level      string
	framesLeft int
}

// Playing is the main gameplay scene
type Playing struct {
	deps     Deps
	cfg      *config.LevelConfig
	session  *level.Session
	renderer *renderer
	recorder *replay.Recorder
	pending  *pendingNav
	logger   *log.Logger

	screenW int
	screenH int
}

// New creates a playing scene for one level
func New(cfg *config.LevelConfig, deps Deps) (*Playing, error) {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Input == nil {
		deps.Input = system.NewInputSystem(nil)
	}

	p := &Playing{
		deps:     deps,
		cfg:      cfg,
		renderer: newRenderer(cfg, deps.Assets),
		logger:   deps.Logger.With("level", cfg.ID),
		screenW:  deps.Game.Display.ScreenWidth,
		screenH:  deps.Game.Display.ScreenHeight,
	}

	session, err := level.New(cfg, level.Options{
		StartingLives:     deps.Game.Session.StartingLives,
		PresentationDelay: time.Duration(deps.Game.Session.PresentationDelayMs) * time.Millisecond,
		ViewWidth:         float64(p.screenW),
		ViewHeight:        float64(p.screenH),
	}, level.Deps{
		Cues:   deps.Cues,
		Store:  deps.Store,
		Nav:    p,
		Logger: deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	p.session = session

	return p, nil
}

// Advance implements level.Navigator
func (p *Playing) Advance(levelID string, after time.Duration) {
	kind := navLevel
	if levelID == "" {
		kind = navVictory
	}
	p.pending = &pendingNav{
		kind:       kind,
		level:      levelID,
		framesLeft: p.delayFrames(after),
	}
}

// ReturnToMenu implements level.Navigator
func (p *Playing) ReturnToMenu() {
	p.pending = &pendingNav{kind: navMenu}
}

func (p *Playing) delayFrames(d time.Duration) int {
	fps := p.deps.Game.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	return int(math.Round(d.Seconds() * float64(fps)))
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.pending != nil {
		return p.navigate()
	}

	in := p.deps.Input.GetInput()

	if err := p.handleOverlay(); err != nil {
		return nil, err
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if p.pending == nil {
		if _, err := p.session.Tick(in); err != nil {
			return nil, fmt.Errorf("level %s: %w", p.cfg.ID, err)
		}
	}

	if p.pending != nil {
		return p.navigate()
	}
	return nil, nil // nil = stay on this scene
}

// handleOverlay applies the pause and death overlay actions
func (p *Playing) handleOverlay() error {
	in := p.deps.Input

	switch p.session.State() {
	case state.StatePaused:
		switch {
		case in.JustPressed(system.ActionRestart):
			p.recordAction(replay.ActionRestart)
			return p.session.Restart()
		case in.JustPressed(system.ActionMenu):
			p.session.Quit()
		}
	case state.StateDead:
		if in.JustPressed(system.ActionConfirm) {
			p.recordAction(replay.ActionRetry)
			return p.session.Retry()
		}
	}
	return nil
}

func (p *Playing) recordAction(action string) {
	if p.recorder != nil {
		p.recorder.RecordAction(action)
	}
}

// navigate counts down the presentation delay, then builds the next scene
func (p *Playing) navigate() (scene.Scene, error) {
	if p.pending.framesLeft > 0 {
		p.pending.framesLeft--
		return nil, nil
	}

	director := p.deps.Director
	if director == nil {
		return nil, fmt.Errorf("level %s: no director to navigate with", p.cfg.ID)
	}

	switch p.pending.kind {
	case navVictory:
		return director.Menu(scene.MenuVictory), nil
	case navMenu:
		return director.Menu(scene.MenuTitle), nil
	default:
		next, err := director.Level(p.pending.level)
		if err != nil {
			return nil, fmt.Errorf("failed to advance to level %s: %w", p.pending.level, err)
		}
		return next, nil
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w != p.screenW || h != p.screenH {
		p.screenW, p.screenH = w, h
		p.session.Resize(float64(w), float64(h))
	}

	p.renderer.draw(screen, p.session)
	p.renderer.drawHUD(screen, p.session)
	p.renderer.drawOverlay(screen, p.session)
}

// OnEnter starts the session and, if enabled, input recording
func (p *Playing) OnEnter() {
	if err := p.session.Start(); err != nil {
		p.logger.Error("failed to start level", "err", err)
		return
	}
	if p.deps.RecordDir != "" {
		p.recorder = replay.NewRecorder(p.cfg.ID, p.session.Lives())
		p.logger.Info("recording enabled", "dir", p.deps.RecordDir)
	}
}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := filepath.Join(p.deps.RecordDir, replay.GenerateFilename(p.cfg.ID))
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// Name implements scene.Scene
func (p *Playing) Name() string {
	return "playing:" + p.cfg.ID
}

// Session returns the hosted level session
func (p *Playing) Session() *level.Session {
	return p.session
}
