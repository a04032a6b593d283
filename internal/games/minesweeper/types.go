package minesweeper

import (
	"errors"
	"fmt"
)

// CellState is the visible state of a single cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a Minesweeper game.
type Status int

const (
	StatusIdle    Status = iota // Board created, no mines placed yet
	StatusPlaying               // First cell revealed, clock running
	StatusWon                   // Every safe cell revealed
	StatusLost                  // A mine was revealed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted until Reset.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Cell is one square of the board.
// AdjacentMines is only meaningful for cells that are not mines.
type Cell struct {
	Row           int
	Col           int
	Mine          bool
	State         CellState
	AdjacentMines int
}

// Config describes the board dimensions and mine count.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// Preset board sizes.
var (
	Beginner     = Config{Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Config{Rows: 16, Cols: 16, Mines: 40}
	Expert       = Config{Rows: 16, Cols: 30, Mines: 99}
)

// Cells returns the total number of cells on the board.
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// SafeCells returns the number of cells that are not mines.
func (c Config) SafeCells() int {
	return c.Cells() - c.Mines
}

// MaxMines returns the largest mine count that still leaves room for the
// mine-free 3x3 opening around the first click wherever it lands.
func (c Config) MaxMines() int {
	return c.Cells() - min(3, c.Rows)*min(3, c.Cols)
}

// Validate checks that the board can be built and mined.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return &ConfigError{Field: "rows", Value: c.Rows, Reason: "must be positive"}
	case c.Cols <= 0:
		return &ConfigError{Field: "cols", Value: c.Cols, Reason: "must be positive"}
	case c.Mines < 0:
		return &ConfigError{Field: "mines", Value: c.Mines, Reason: "must not be negative"}
	case c.Mines > c.MaxMines():
		return &ConfigError{
			Field:  "mines",
			Value:  c.Mines,
			Reason: fmt.Sprintf("only %d cells remain outside the opening area of a %dx%d board", c.MaxMines(), c.Rows, c.Cols),
		}
	}
	return nil
}

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("minesweeper: invalid config")

// ConfigError reports a board configuration that cannot be played.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("minesweeper: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) succeed.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
