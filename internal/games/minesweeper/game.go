package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Visual characters for rendering
const (
	HiddenChar   = '■'
	FlagChar     = 'F'
	MineChar     = '*'
	EmptyChar    = '·'
	CursorLeft   = '['
	CursorRight  = ']'
	cellStride   = 2 // Screen columns per board column
	hudHeight    = 2
	footerHeight = 2
)

// numberColors colors the adjacency digits 1..8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the board preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the board preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game adapts Engine to the arcade platform: a keyboard cursor, mouse
// clicks mapped to cells, and a terminal rendering of the board.
type Game struct {
	engine  *Engine
	opts    []Option
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset

	cursorRow int
	cursorCol int

	// Board origin on screen, from the last layout
	originX int
	originY int
	bounds  core.Rect // Clickable area, spacer columns included
}

// New creates a new Minesweeper game instance.
// Options are forwarded to every Engine the game builds.
func New(opts ...Option) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset loads the board config and starts a fresh, unmined board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	config.ApplyMinesweeperPreset(&cfg, difficultyPreset)
	g.preset = cfg.Difficulty

	b := cfg.Board()
	opts := make([]Option, 0, len(g.opts)+1)
	if runtime.Seed != 0 {
		opts = append(opts, WithSeed(runtime.Seed))
	}
	opts = append(opts, g.opts...)

	engine, err := NewEngine(Config{Rows: b.Rows, Cols: b.Cols, Mines: b.Mines}, opts...)
	if err != nil {
		// Unplayable custom board, fall back to the smallest preset
		g.preset = config.DifficultyBeginner
		engine, _ = NewEngine(Beginner, opts...)
	}
	g.engine = engine

	board := engine.Config()
	g.cursorRow, g.cursorCol = board.Rows/2, board.Cols/2
	g.layout(runtime.ScreenW, runtime.ScreenH)
}

// Engine exposes the underlying board.
func (g *Game) Engine() *Engine {
	return g.engine
}

// BoardName returns the difficulty preset in play, used to file win times.
func (g *Game) BoardName() string {
	return string(g.preset)
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	cfg := g.engine.Config()

	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, cfg.Rows-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, cfg.Rows-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, cfg.Cols-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, cfg.Cols-1)
	}

	if in.HasPointer {
		row, col, ok := g.CellAt(in.Pointer.X, in.Pointer.Y)
		if !ok {
			// Clicks outside the board do nothing
			return core.StepResult{State: g.State()}
		}
		g.cursorRow, g.cursorCol = row, col
	}

	switch {
	case in.Has(core.ActionPrimary):
		g.engine.RevealCell(g.cursorRow, g.cursorCol)
	case in.Has(core.ActionSecondary):
		g.engine.ToggleFlag(g.cursorRow, g.cursorCol)
	}

	return core.StepResult{State: g.State()}
}

// layout centers the board in a w x h screen.
func (g *Game) layout(w, h int) {
	cfg := g.engine.Config()
	boardW := cfg.Cols*cellStride + 1
	boardH := cfg.Rows

	g.originX = core.Max(1, (w-boardW)/2+1)
	g.originY = core.Max(hudHeight, hudHeight+(h-hudHeight-footerHeight-boardH)/2)
	g.bounds = core.NewRect(g.originX-1, g.originY, cfg.Cols*cellStride, boardH)
}

// CellAt maps a screen position to a board cell.
// A spacer column belongs to the cell on its right.
func (g *Game) CellAt(x, y int) (row, col int, ok bool) {
	if !g.bounds.Contains(x, y) {
		return 0, 0, false
	}
	return y - g.originY, (x - g.bounds.X) / cellStride, true
}

// Render draws the HUD, the board and the cursor.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout(dst.Width(), dst.Height())

	e := g.engine
	status := e.Status()

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Mines: %d ", e.RemainingMines()))
	timeText := fmt.Sprintf(" Time: %03d ", e.ElapsedSeconds())
	dst.DrawText(dst.Width()-len(timeText)-2, 0, timeText)
	dst.DrawTextCentered(0, fmt.Sprintf(" %s ", g.preset))

	for _, row := range e.Board() {
		for _, cell := range row {
			r, c := g.glyph(cell, status)
			dst.SetColored(g.originX+cell.Col*cellStride, g.originY+cell.Row, r, c)
		}
	}

	if !status.Terminal() {
		cx := g.originX + g.cursorCol*cellStride
		cy := g.originY + g.cursorRow
		dst.SetColored(cx-1, cy, CursorLeft, core.ColorBrightYellow)
		dst.SetColored(cx+1, cy, CursorRight, core.ColorBrightYellow)
	}

	help := "arrows move  space reveal  f flag  q quit"
	dst.DrawTextColored((dst.Width()-len(help))/2, dst.Height()-1, help, core.ColorGray)

	switch status {
	case StatusWon:
		drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Time: %ds  |  Press R to play again", e.ElapsedSeconds()))
	case StatusLost:
		drawCenteredMessage(dst, "BOOM", "Press R to try again")
	}
}

func (g *Game) glyph(cell Cell, status Status) (rune, core.Color) {
	switch cell.State {
	case Flagged:
		if status == StatusLost && !cell.Mine {
			return 'X', core.ColorBrightRed
		}
		return FlagChar, core.ColorRed
	case Revealed:
		if cell.Mine {
			return MineChar, core.ColorBrightRed
		}
		if cell.AdjacentMines == 0 {
			return EmptyChar, core.ColorGray
		}
		return rune('0' + cell.AdjacentMines), numberColors[cell.AdjacentMines]
	default:
		return HiddenChar, core.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
// Minesweeper is timed rather than scored, so Score stays zero.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		GameOver: status.Terminal(),
		Won:      status == StatusWon,
		Seconds:  g.engine.ElapsedSeconds(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}
