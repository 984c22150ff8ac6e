package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/platform/tui"
	"github.com/vovakirdan/jerry/internal/session"
	"github.com/vovakirdan/jerry/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history",
	Long: `Open an interactive table of archived runs.
Tab switches between the best and the most recent runs.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	w, h := tui.NewHost().Size()
	if err := tui.RunBoard(store, session.GameID, w, h); err != nil {
		return fmt.Errorf("board failed: %w", err)
	}
	return nil
}
