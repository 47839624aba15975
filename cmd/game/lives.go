package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/masks/internal/infrastructure/storage"
)

var livesCmd = &cobra.Command{
	Use:   "lives",
	Short: "Manage the saved lives count",
}

var livesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved lives count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("failed to open profile database: %w", err)
		}
		defer store.Close()

		profile, err := store.LoadProfile()
		if err != nil {
			return err
		}
		if profile.Lives <= 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No lives saved; the next run starts fresh.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Lives: %d\n", profile.Lives)
		return nil
	},
}

var livesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved lives so the next run starts fresh",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("failed to open profile database: %w", err)
		}
		defer store.Close()

		if err := store.SaveLives(0); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Lives reset."))
		return nil
	},
}

func init() {
	livesCmd.AddCommand(livesShowCmd)
	livesCmd.AddCommand(livesResetCmd)
}
