// arcade is a terminal arcade with Minesweeper and Flappy Bird.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show records for a game
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/applog"
	"github.com/vovakirdan/mini-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/mini-arcade/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Arcade - Minesweeper and Flappy Bird in your terminal",
	Long: `Mini Arcade is a terminal gaming platform with two casual games:
Minesweeper and Flappy Bird.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores and best times
  config   - Print a game's default config

Examples:
  arcade list
  arcade play minesweeper --difficulty expert
  arcade play flappy
  arcade menu
  arcade scores minesweeper`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := applog.ParseLevel(flagLogLevel)
		return err
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// cliLogger logs to stderr for commands that do not take over the terminal.
func cliLogger() *log.Logger {
	level, _ := applog.ParseLevel(flagLogLevel)
	return applog.New(os.Stderr, level)
}

// sessionLogger logs to the arcade log file while a Bubble Tea program owns
// the terminal. The returned closer must be closed when the session ends.
func sessionLogger() (*log.Logger, io.Closer) {
	level, _ := applog.ParseLevel(flagLogLevel)
	f, err := applog.OpenFile(applog.DefaultFilePath())
	if err != nil {
		cliLogger().Warn("logging disabled", "err", err)
		return applog.Discard(), io.NopCloser(nil)
	}
	return applog.New(f, level), f
}

// runtimeConfig builds the runtime config from global flags and the current
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
