package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config for a game. Save it to
~/.arcade/configs/<game>.yaml or pass it with --config to customize play.

Examples:
  arcade config flappy > ~/.arcade/configs/flappy.yaml
  arcade config minesweeper > ./my-boards.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		cliLogger().Error("no config for game", "game", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
