package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/score"
	"github.com/vovakirdan/jerry/internal/session"
	"github.com/vovakirdan/jerry/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorBest  = color.New(color.FgHiYellow)
	colorDim   = color.New(color.FgHiBlack)
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and the best runs",
	Long: `Print the all-time high score and the best archived runs.

Examples:
  jerry scores
  jerry scores --limit 20
  jerry scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the archived runs (the high score file is kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	best := score.NewFileStore(cfg.Score.File, nil).Load()
	if !flagClear {
		colorTitle.Fprintln(out, "Jerry - High Score")
		fmt.Fprintf(out, "Best: %s\n\n", colorBest.Sprint(best))
	}

	if !cfg.History.Enabled {
		colorDim.Fprintln(out, "Run history is disabled.")
		return nil
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(session.GameID); err != nil {
			return fmt.Errorf("cannot clear run history: %w", err)
		}
		colorDim.Fprintln(out, "Run history cleared.")
		return nil
	}
	return printRuns(out, store, best)
}

func printRuns(out io.Writer, store *storage.Store, best int) error {
	runs, err := store.TopScores(session.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("cannot read run history: %w", err)
	}
	if len(runs) == 0 {
		colorDim.Fprintln(out, "No runs recorded yet. Run 'jerry' to play!")
		return nil
	}

	colorTitle.Fprintln(out, "Best runs")
	fmt.Fprintf(out, "  %-4s  %-8s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %s\n", "----", "-----", "----")
	for i, r := range runs {
		line := fmt.Sprintf("  %-4d  %-8d  %s", i+1, r.Score, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		// The archived run matching the record file gets highlighted.
		if r.Score == best {
			colorBest.Fprintln(out, line)
			continue
		}
		fmt.Fprintln(out, line)
	}

	if stats, err := store.Stats(session.GameID); err == nil {
		fmt.Fprintln(out)
		colorDim.Fprintf(out, "%d runs, average %.1f\n", stats.Runs, stats.Average)
	}
	return nil
}
