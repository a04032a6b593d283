// Package minesweeper implements classic Minesweeper.
// Engine holds the pure board logic; Game adapts it to the arcade platform.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Engine is a single Minesweeper board and its game state.
// It is not safe for concurrent use.
type Engine struct {
	cfg   Config
	cells []Cell // Row-major: index = row*Cols + col
	clock core.Clock
	rng   *rand.Rand

	status    Status
	revealed  int
	flagged   int
	startedAt time.Time
	endedAt   time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock sets the time source used for the game timer.
func WithClock(c core.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithSeed seeds mine placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// NewEngine validates cfg and returns an idle board.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.clock.Now().UnixNano()))
	}

	e.Reset()
	return e, nil
}

// Reset returns the engine to an idle, unmined, unflagged board.
func (e *Engine) Reset() {
	if cap(e.cells) >= e.cfg.Cells() {
		e.cells = e.cells[:e.cfg.Cells()]
	} else {
		e.cells = make([]Cell, e.cfg.Cells())
	}
	for i := range e.cells {
		e.cells[i] = Cell{Row: i / e.cfg.Cols, Col: i % e.cfg.Cols}
	}

	e.status = StatusIdle
	e.revealed = 0
	e.flagged = 0
	e.startedAt = time.Time{}
	e.endedAt = time.Time{}
}

// ResetWith validates cfg, adopts it and resets to an idle board. On error
// the engine keeps its current config and state.
func (e *Engine) ResetWith(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.Reset()
	return nil
}

// InBounds reports whether (row, col) is on the board.
func (e *Engine) InBounds(row, col int) bool {
	return row >= 0 && row < e.cfg.Rows && col >= 0 && col < e.cfg.Cols
}

func (e *Engine) index(row, col int) int {
	return row*e.cfg.Cols + col
}

// neighbors appends the indices of the up to 8 cells around (row, col).
func (e *Engine) neighbors(dst []int, row, col int) []int {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if e.InBounds(r, c) {
				dst = append(dst, e.index(r, c))
			}
		}
	}
	return dst
}

// RevealCell opens the cell at (row, col).
// The first reveal on the board places the mines and starts the clock, even
// when the target itself is flagged. Returns false when the cell did not
// open: out of range, game over, or the cell is not hidden.
func (e *Engine) RevealCell(row, col int) bool {
	if !e.InBounds(row, col) || e.status.Terminal() {
		return false
	}

	if e.status == StatusIdle {
		e.placeMines(row, col)
		e.status = StatusPlaying
		e.startedAt = e.clock.Now()
	}

	idx := e.index(row, col)
	if e.cells[idx].State != Hidden {
		return false
	}

	if e.cells[idx].Mine {
		e.cells[idx].State = Revealed
		e.revealMines()
		e.finish(StatusLost)
		return true
	}

	e.floodReveal(idx)

	if e.revealed == e.cfg.SafeCells() {
		e.flagMines()
		e.finish(StatusWon)
	}
	return true
}

// placeMines scatters the configured mines over every cell outside the 3x3
// block centred on the first click.
func (e *Engine) placeMines(row, col int) {
	candidates := make([]int, 0, len(e.cells))
	for i := range e.cells {
		r, c := i/e.cfg.Cols, i%e.cfg.Cols
		if core.Abs(r-row) <= 1 && core.Abs(c-col) <= 1 {
			continue
		}
		candidates = append(candidates, i)
	}

	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, i := range candidates[:e.cfg.Mines] {
		e.cells[i].Mine = true
	}
	e.countAdjacent()
}

func (e *Engine) countAdjacent() {
	var buf [8]int
	for i := range e.cells {
		if e.cells[i].Mine {
			continue
		}
		count := 0
		for _, n := range e.neighbors(buf[:0], e.cells[i].Row, e.cells[i].Col) {
			if e.cells[n].Mine {
				count++
			}
		}
		e.cells[i].AdjacentMines = count
	}
}

// floodReveal opens start and, through zero-count cells, every connected
// hidden safe cell. Flagged cells stop the cascade.
func (e *Engine) floodReveal(start int) {
	var buf [8]int
	stack := []int{start}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &e.cells[i]
		if cell.State != Hidden || cell.Mine {
			continue
		}
		cell.State = Revealed
		e.revealed++

		if cell.AdjacentMines != 0 {
			continue
		}
		for _, n := range e.neighbors(buf[:0], cell.Row, cell.Col) {
			if e.cells[n].State == Hidden && !e.cells[n].Mine {
				stack = append(stack, n)
			}
		}
	}
}

// revealMines shows every mine the player had not flagged.
func (e *Engine) revealMines() {
	for i := range e.cells {
		if e.cells[i].Mine && e.cells[i].State == Hidden {
			e.cells[i].State = Revealed
		}
	}
}

// flagMines flags every mine still hidden after a win.
func (e *Engine) flagMines() {
	for i := range e.cells {
		if e.cells[i].Mine && e.cells[i].State == Hidden {
			e.cells[i].State = Flagged
			e.flagged++
		}
	}
}

func (e *Engine) finish(s Status) {
	e.status = s
	e.endedAt = e.clock.Now()
}

// ToggleFlag cycles a hidden cell to flagged and back.
// Only allowed before the game ends; revealed cells are left alone.
func (e *Engine) ToggleFlag(row, col int) bool {
	if !e.InBounds(row, col) || e.status.Terminal() {
		return false
	}

	cell := &e.cells[e.index(row, col)]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		e.flagged++
	case Flagged:
		cell.State = Hidden
		e.flagged--
	default:
		return false
	}
	return true
}

// RemainingMines is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (e *Engine) RemainingMines() int {
	return e.cfg.Mines - e.flagged
}

// ElapsedTime is zero before the first reveal, frozen once the game ends,
// and otherwise the time since the first reveal.
func (e *Engine) ElapsedTime() time.Duration {
	switch {
	case e.startedAt.IsZero():
		return 0
	case !e.endedAt.IsZero():
		return e.endedAt.Sub(e.startedAt)
	default:
		return e.clock.Now().Sub(e.startedAt)
	}
}

// ElapsedSeconds is ElapsedTime truncated to whole seconds.
func (e *Engine) ElapsedSeconds() int {
	return int(e.ElapsedTime() / time.Second)
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Config returns the board configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// RevealedCount returns how many safe cells are open.
func (e *Engine) RevealedCount() int {
	return e.revealed
}

// FlaggedCount returns how many cells carry a flag.
func (e *Engine) FlaggedCount() int {
	return e.flagged
}

// Cell returns a copy of the cell at (row, col).
// The second result is false when the coordinates are off the board.
func (e *Engine) Cell(row, col int) (Cell, bool) {
	if !e.InBounds(row, col) {
		return Cell{}, false
	}
	return e.cells[e.index(row, col)], true
}

// Board returns a copy of the grid, indexed [row][col].
func (e *Engine) Board() [][]Cell {
	board := make([][]Cell, e.cfg.Rows)
	for r := range board {
		board[r] = make([]Cell, e.cfg.Cols)
		copy(board[r], e.cells[r*e.cfg.Cols:(r+1)*e.cfg.Cols])
	}
	return board
}
