package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/flappy"
	"github.com/vovakirdan/mini-arcade/internal/games/minesweeper"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL  - Move cursor (Minesweeper)
  Space/Enter/Click - Reveal (Minesweeper) / Flap (Flappy Bird)
  F/X/Right click   - Flag (Minesweeper)
  P                 - Pause (Flappy Bird)
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Minesweeper boards (--difficulty):
  beginner      - 9x9, 10 mines
  intermediate  - 16x16, 40 mines
  expert        - 16x30, 99 mines
  custom        - Board "custom" from the config file

Without --difficulty, Minesweeper asks for a board first.

Examples:
  arcade play minesweeper
  arcade play minesweeper --difficulty expert
  arcade play flappy
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Minesweeper board: beginner, intermediate, expert, custom")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := cliLogger()

	// Check if game exists
	if !registry.Exists(gameID) {
		logger.Error("unknown game", "game", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	ok, err := prepareGame(gameID, cfg)
	if err != nil {
		logger.Error("cannot prepare game", "game", gameID, "err", err)
		os.Exit(1)
	}
	// User pressed back or quit
	if !ok {
		return
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "err", err)
		os.Exit(1)
	}

	store := openStore(logger)

	sessLog, closer := sessionLogger()
	runErr := tui.Run(game, store, cfg, sessLog)
	closer.Close()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game crashed", "game", gameID, "err", runErr)
		os.Exit(1)
	}
}

// prepareGame applies --config and --difficulty to the game package before
// it is created. For Minesweeper without --difficulty it shows the board
// selector; ok is false when the user backed out.
func prepareGame(gameID string, cfg core.RuntimeConfig) (ok bool, err error) {
	switch gameID {
	case "flappy":
		flappy.SetConfigPath(flagConfig)

	case "minesweeper":
		minesweeper.SetConfigPath(flagConfig)

		preset, valid := config.ParseDifficultyPreset(flagDifficulty)
		if !valid {
			return false, fmt.Errorf("unknown difficulty %q (want beginner, intermediate, expert or custom)", flagDifficulty)
		}

		if preset == "" {
			boards, loadErr := config.LoadMinesweeper(flagConfig)
			if loadErr != nil {
				return false, loadErr
			}
			preset, err = tui.RunDifficultySelector(boards, cfg)
			if err != nil {
				return false, err
			}
			if preset == "" {
				return false, nil
			}
		}
		minesweeper.SetDifficultyPreset(string(preset))
	}
	return true, nil
}

// openStore opens the score database. The arcade still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
