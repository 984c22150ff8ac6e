package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerry/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Save it as
~/.jerry/config.yaml or ./configs/jerry.yaml and edit what you need.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.OutOrStdout().Write(config.DefaultYAML())
	},
}
