package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/masks/internal/application/game"
	"github.com/younwookim/masks/internal/application/scene"
	"github.com/younwookim/masks/internal/application/scene/playing"
	"github.com/younwookim/masks/internal/infrastructure/asset"
	"github.com/younwookim/masks/internal/infrastructure/audio"
	"github.com/younwookim/masks/internal/infrastructure/storage"
)

var (
	flagRecordDir string
	flagAssetsDir string
	flagMute      bool
	flagUnmute    bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Open the game window on the title screen, or straight into a level.

Controls:
  Left/Right, A/D  - Move
  Up/W/Space       - Jump
  P/Esc            - Pause / resume
  R                - Restart the level (while paused)
  M                - Main menu (while paused)
  Enter            - Retry after falling / continue
  Q                - Quit (title screen)

Examples:
  game play
  game play blue
  game play --mute
  game play --record ./replays --assets ./sprites`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecordDir, "record", "", "Save each level session's input to this directory")
	playCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Directory with level images (default: flat colours)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Turn sound off and remember it")
	playCmd.Flags().BoolVar(&flagUnmute, "unmute", false, "Turn sound on and remember it")
	playCmd.MarkFlagsMutuallyExclusive("mute", "unmute")
}

// profileStore is the part of storage.Store the play command needs
type profileStore interface {
	LoadProfile() (storage.Profile, error)
	LoadLives() (int, error)
	SaveLives(lives int) error
	SaveAudioEnabled(enabled bool) error
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	bundle, err := loadBundle()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var store profileStore
	db, err := storage.Open(flagDBPath)
	if err != nil {
		// Play on without persistence
		logger.Warn("could not open profile database", "path", flagDBPath, "err", err)
		store = storage.NewMemoryStore(0)
	} else {
		defer db.Close()
		store = db
	}

	enabled := resolveAudioEnabled(store, logger)
	player := audio.NewPlayer(bundle.Game.Audio, enabled, logger)
	if err := player.Initialize(); err == nil {
		defer player.Close()
	}

	var assets *asset.Provider
	if flagAssetsDir != "" {
		assets = asset.NewProvider(os.DirFS(flagAssetsDir), logger)
	}

	if flagRecordDir != "" {
		if err := os.MkdirAll(flagRecordDir, 0o755); err != nil {
			return fmt.Errorf("failed to create record directory: %w", err)
		}
	}

	director := game.NewDirector(bundle, playing.Deps{
		Assets:    assets,
		Cues:      player,
		Store:     store,
		Logger:    logger,
		RecordDir: flagRecordDir,
	})

	initial, err := initialScene(director, args)
	if err != nil {
		return err
	}

	display := bundle.Game.Display
	g := game.New(initial, display.ScreenWidth, display.ScreenHeight, logger)
	g.SetDT(1.0 / float64(display.Framerate))
	defer g.Shutdown()

	scale := max(display.Scale, 1)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// RunGame returns nil when a scene ends the loop with ebiten.Termination
	return ebiten.RunGame(g)
}

// resolveAudioEnabled applies --mute/--unmute to the stored preference
func resolveAudioEnabled(store profileStore, logger *log.Logger) bool {
	enabled := true
	if profile, err := store.LoadProfile(); err != nil {
		logger.Warn("could not load profile", "err", err)
	} else {
		enabled = profile.AudioEnabled
	}

	if !flagMute && !flagUnmute {
		return enabled
	}
	enabled = flagUnmute
	if err := store.SaveAudioEnabled(enabled); err != nil {
		logger.Warn("could not save audio preference", "err", err)
	}
	return enabled
}

func initialScene(d *game.Director, args []string) (scene.Scene, error) {
	if len(args) == 0 {
		return d.Menu(scene.MenuTitle), nil
	}
	s, err := d.Level(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w (run 'game levels' to list them)", err)
	}
	return s, nil
}
