package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/masks/internal/application/level"
	"github.com/younwookim/masks/internal/application/replay"
	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Runs a recording made with 'game play --record' against the level it was
recorded on, without opening a window, and reports how the session ended.

Examples:
  game replay ./replays/replay_nature_20260101_120000.json
  game replay run.json --config ./my-configs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := loadBundle()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		res, err := simulateFile(args[0], bundle, newLogger())
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

// simulateFile loads a recording and replays it against its level
func simulateFile(path string, bundle *config.Bundle, logger *log.Logger) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}

	cfg, ok := bundle.Level(data.Level)
	if !ok {
		return replay.Result{}, fmt.Errorf("replay %s: unknown level %q", path, data.Level)
	}

	return replay.Simulate(*data, cfg, sessionOptions(bundle.Game), logger)
}

// sessionOptions mirrors what the playing scene passes to a session
func sessionOptions(g *config.GameConfig) level.Options {
	return level.Options{
		StartingLives:     g.Session.StartingLives,
		PresentationDelay: time.Duration(g.Session.PresentationDelayMs) * time.Millisecond,
		ViewWidth:         float64(g.Display.ScreenWidth),
		ViewHeight:        float64(g.Display.ScreenHeight),
	}
}

func outcome(res replay.Result) string {
	switch {
	case res.Advanced && res.Next == "":
		return okStyle.Render("mask collected, run complete")
	case res.Advanced:
		return okStyle.Render("mask collected, next: " + res.Next)
	case res.Menu:
		return badStyle.Render("returned to menu")
	case res.State == state.StateDead:
		return badStyle.Render("dead")
	default:
		return res.State.String()
	}
}

func printResult(w io.Writer, res replay.Result) {
	fmt.Fprintln(w, titleStyle.Render("Replay: "+res.Level))
	fmt.Fprintln(w)
	fmt.Fprintln(w, table([]string{"Outcome", "State", "Frame", "Played", "Lives", "Deaths"}, [][]string{{
		outcome(res),
		res.State.String(),
		fmt.Sprint(res.Frame),
		fmt.Sprint(res.Played),
		fmt.Sprint(res.Lives),
		fmt.Sprint(res.Deaths),
	}}))
}
