package replay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/masks/internal/application/level"
	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/infrastructure/config"
	"github.com/younwookim/masks/internal/infrastructure/storage"
)

// Result summarises a headless re-simulation
type Result struct {
	Level  string
	State  state.GameState
	Frame  int // Session frame counter when the replay ended
	Played int // Recorded frames consumed
	Lives  int
	Deaths int

	Advanced bool   // Goal collected and navigation requested
	Next     string // Level the goal advanced to; empty after the last level
	Menu     bool   // Session routed back to the menu
}

// navRecorder remembers the navigation request that ends a replay
type navRecorder struct {
	advanced bool
	next     string
	menu     bool
}

func (n *navRecorder) Advance(levelID string, _ time.Duration) {
	n.advanced = true
	n.next = levelID
}

func (n *navRecorder) ReturnToMenu() { n.menu = true }

func (n *navRecorder) done() bool { return n.advanced || n.menu }

// Simulate replays recorded input against a fresh session of cfg. Lives
// come from the recording, never from the player's profile.
func Simulate(data ReplayData, cfg *config.LevelConfig, opts level.Options, logger *log.Logger) (Result, error) {
	if data.Level != cfg.ID {
		return Result{}, fmt.Errorf("replay is for level %q, got config for %q", data.Level, cfg.ID)
	}

	nav := &navRecorder{}
	s, err := level.New(cfg, opts, level.Deps{
		Store:  storage.NewMemoryStore(data.Lives),
		Nav:    nav,
		Logger: logger,
	})
	if err != nil {
		return Result{}, err
	}
	if err := s.Start(); err != nil {
		return Result{}, err
	}

	res := Result{Level: cfg.ID}
	rp := NewReplayer(data)

	for !nav.done() {
		in, action, ok := rp.GetInput()
		if !ok {
			break
		}

		if err := applyAction(s, action); err != nil {
			return res, fmt.Errorf("frame %d: %w", rp.CurrentFrame()-1, err)
		}
		if nav.done() {
			break
		}

		prev := s.State()
		st, err := s.Tick(in)
		if err != nil {
			return res, fmt.Errorf("frame %d: %w", rp.CurrentFrame()-1, err)
		}
		if prev == state.StateRunning && st == state.StateDead {
			res.Deaths++
		}
	}

	res.State = s.State()
	res.Frame = s.Frame()
	res.Played = rp.CurrentFrame()
	res.Lives = s.Lives()
	res.Advanced = nav.advanced
	res.Next = nav.next
	res.Menu = nav.menu

	return res, nil
}

func applyAction(s *level.Session, action string) error {
	switch action {
	case "":
		return nil
	case ActionRetry:
		return s.Retry()
	case ActionRestart:
		return s.Restart()
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}
