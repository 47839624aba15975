// game is a side-scrolling platformer: collect the mask at the end of each
// realm without falling out of the world.
//
// Usage:
//
//	game play [level]        - Play from the title screen or a given level
//	game levels              - Show the level chain
//	game replay <file>       - Re-simulate a recorded session headlessly
//	game lives reset         - Forget the saved lives count
//
// Global flags:
//
//	--config <dir>     - Load configs from a directory instead of the bundled set
//	--db <path>        - Profile database path (default: ~/.masks/profile.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/masks/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Masks of the Four Realms - a small platformer",
	Long: `Masks of the Four Realms is a platformer with four short levels.
Reach the mask at the end of each realm to move on; falling costs a life.

Available commands:
  play     - Start the game
  levels   - Show the level chain
  replay   - Re-simulate a recorded session
  lives    - Manage the saved lives count

Examples:
  game play
  game play desert
  game play --record ./replays
  game replay ./replays/replay_nature_20260101_120000.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: bundled configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.masks/profile.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(livesCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "masks",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// newLoader returns a loader over --config, or over the bundled configs
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadBundle() (*config.Bundle, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	return loader.LoadAll()
}
