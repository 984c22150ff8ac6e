// jerry is a terminal arcade game: steer the mouse to the cheese, grow
// with every bite, and don't run into the walls or yourself.
//
// Usage:
//
//	jerry              - Play one session (splash, game, game over)
//	jerry scores       - Print the high score and the best archived runs
//	jerry scores --clear - Delete the archived runs
//	jerry board        - Browse the run history interactively
//	jerry config       - Print the default configuration file
//
// Global flags:
//
//	--config <path>  - Configuration file (default: ~/.jerry/config.yaml,
//	                   then ./configs/jerry.yaml, then built-in defaults)
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	// Commands return their errors so deferred cleanup runs before exit.
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jerry",
	Short: "Jerry - catch the cheese in your terminal",
	Long: `Jerry is a terminal arcade game. Steer the mouse with the arrow keys
or WASD, eat the cheese to grow, and avoid the edges and your own tail.

Examples:
  jerry
  jerry --config ./my-jerry.yaml
  jerry scores
  jerry board`,
	Args:          cobra.NoArgs,
	RunE:          runGame,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
