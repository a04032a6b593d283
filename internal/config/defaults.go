package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      800,
			JumpStrength: 300,
			PipeSpeed:    200,
		},
		Pipes: FlappyPipes{
			Width:         60,
			Gap:           150,
			SpawnInterval: 2,
		},
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Difficulty: DifficultyBeginner,
		Boards:     defaultBoards(),
	}
}

func defaultBoards() map[string]MinesweeperBoard {
	return map[string]MinesweeperBoard{
		string(DifficultyBeginner):     {Rows: 9, Cols: 9, Mines: 10},
		string(DifficultyIntermediate): {Rows: 16, Cols: 16, Mines: 40},
		string(DifficultyExpert):       {Rows: 16, Cols: 30, Mines: 99},
		string(DifficultyCustom):       {Rows: 12, Cols: 20, Mines: 30},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
