package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var (
	flagBoard string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores or best times for a game",
	Long: `Display the top 10 records for the specified game.

Flappy Bird lists high scores; Minesweeper lists the fastest wins,
optionally filtered by board.

Examples:
  arcade scores flappy
  arcade scores minesweeper
  arcade scores minesweeper --board expert
  arcade scores flappy --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagBoard, "board", "", "Only show times on this Minesweeper board")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every record for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := cliLogger()

	title, ok := registry.Title(gameID)
	if !ok {
		logger.Error("unknown game", "game", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "path", flagDBPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Error("cannot clear records", "game", gameID, "err", err)
			return
		}
		logger.Info("records cleared", "game", gameID)
		return
	}

	if gameID == "minesweeper" {
		err = printTimes(store, gameID, title)
	} else {
		err = printScores(store, gameID, title)
	}
	if err != nil {
		logger.Error("cannot read records", "game", gameID, "err", err)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, err := store.BestScore(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d\n", best)
	// A run quit before game over sets the best without a history row.
	if high, err := store.HighScore(gameID); err == nil && high < best {
		fmt.Printf("Best finished run: %d\n", high)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printTimes(store *storage.Store, gameID, title string) error {
	times, err := store.BestTimes(gameID, flagBoard, 10)
	if err != nil {
		return err
	}

	heading := "Best Times - " + title
	if flagBoard != "" {
		heading += " (" + flagBoard + ")"
	}
	fmt.Println(heading)
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first time!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-13s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-13s  %s\n", "----", "----", "-----", "----")
	for i, entry := range times {
		fmt.Printf("  %-4d  %-8s  %-13s  %s\n",
			i+1, fmt.Sprintf("%ds", entry.Seconds), entry.Board, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
