package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/younwookim/masks/internal/infrastructure/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level chain",
	Long:  `Lists every level in play order with its world size and where its goal leads.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := loadBundle()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		printLevels(cmd.OutOrStdout(), bundle)
		return nil
	},
}

func printLevels(w io.Writer, bundle *config.Bundle) {
	fmt.Fprintln(w, titleStyle.Render(bundle.Game.Display.Title))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(bundle.Game.Levels))
	for _, id := range bundle.Game.Levels {
		lvl, ok := bundle.Level(id)
		if !ok {
			continue
		}
		next := lvl.Next
		if next == "" {
			next = "victory"
		}
		rows = append(rows, []string{
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%gx%g", lvl.World.Width, lvl.World.Height),
			strconv.Itoa(len(lvl.Platforms)),
			strconv.FormatFloat(lvl.Physics.Gravity, 'g', -1, 64),
			next,
		})
	}

	fmt.Fprintln(w, table([]string{"ID", "Name", "World", "Platforms", "Gravity", "Next"}, rows))
	fmt.Fprintln(w)
	fmt.Fprintln(w, dimStyle.Render("Run 'game play <id>' to start at a level."))
}
