// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// Engine simulates a fixed pixel canvas; Game scales it onto the terminal.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	WallChar      = '│'
)

// cellAspect is how many terminal columns match one row in width.
const cellAspect = 2.0

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts Engine to the arcade platform.
type Game struct {
	engine  *Engine
	paused  bool
	runtime core.RuntimeConfig
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads the configuration and builds a fresh, idle engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}

	var opts []Option
	if runtime.Seed != 0 {
		opts = append(opts, WithSeed(runtime.Seed))
	}

	engine, err := NewEngine(engineConfig(cfg), opts...)
	if err != nil {
		engine, _ = NewEngine(DefaultConfig(), opts...)
	}
	g.engine = engine
}

// engineConfig flattens the YAML layout into simulation constants.
func engineConfig(c config.FlappyConfig) Config {
	return Config{
		CanvasWidth:       c.Canvas.Width,
		CanvasHeight:      c.Canvas.Height,
		Gravity:           c.Physics.Gravity,
		JumpStrength:      c.Physics.JumpStrength,
		PipeSpeed:         c.Physics.PipeSpeed,
		PipeWidth:         c.Pipes.Width,
		PipeGap:           c.Pipes.Gap,
		PipeSpawnInterval: c.Pipes.SpawnInterval,
	}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Status() == StatusGameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.engine.Status() == StatusPlaying {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPrimary) || in.Has(core.ActionUp) {
		g.engine.Jump()
	}

	g.engine.Update(g.runtime.TickSeconds())

	return core.StepResult{State: g.State()}
}

// viewport is the canvas mapped onto screen cells.
type viewport struct {
	x, y   int     // Top-left screen cell of the field
	w, h   int     // Field size in cells
	sx, sy float64 // Cells per canvas pixel
}

// layout fits the canvas into the screen below the HUD row and above the
// ground, keeping its proportions.
func (g *Game) layout(screenW, screenH int) viewport {
	cfg := g.engine.Config()

	h := core.Max(1, screenH-2)
	w := int(float64(h) * cfg.CanvasWidth / cfg.CanvasHeight * cellAspect)
	if w > screenW-2 {
		w = core.Max(1, screenW-2)
	}

	return viewport{
		x:  (screenW - w) / 2,
		y:  1,
		w:  w,
		h:  h,
		sx: float64(w) / cfg.CanvasWidth,
		sy: float64(h) / cfg.CanvasHeight,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := g.layout(dst.Width(), dst.Height())

	// Walls and ground
	dst.DrawVLine(vp.x-1, vp.y, vp.h, WallChar)
	dst.DrawVLine(vp.x+vp.w, vp.y, vp.h, WallChar)
	dst.DrawHLine(vp.x-1, vp.y+vp.h, vp.w+2, GroundChar)

	for _, p := range g.engine.Pipes() {
		g.drawPipe(dst, vp, p)
	}

	// Draw player
	b := g.engine.Bird()
	bx := vp.x + int(b.X*vp.sx)
	by := vp.y + int(b.Y*vp.sy)
	bw := core.Max(1, int(b.Width*vp.sx))
	for dx := 0; dx < bw; dx++ {
		r := '●'
		if dx == bw-1 {
			r = PlayerChar
		}
		dst.SetColored(bx+dx, by, r, core.ColorBrightYellow)
	}

	// Draw HUD
	dst.DrawText(vp.x, 0, fmt.Sprintf(" Score: %d ", g.engine.Score()))

	switch {
	case g.engine.Status() == StatusIdle:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press SPACE to flap")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.engine.Status() == StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.engine.Score()))
	}
}

// drawPipe renders a single pipe, clipped to the field.
func (g *Game) drawPipe(dst *core.Screen, vp viewport, p Pipe) {
	left := core.Max(0, int(p.X*vp.sx))
	right := core.Min(vp.w, int(p.Right()*vp.sx+0.5))
	if right <= left {
		return
	}

	topEnd := int(p.TopHeight * vp.sy)
	bottomStart := int(p.BottomY*vp.sy + 0.5)

	for x := left; x < right; x++ {
		sx := vp.x + x
		for y := 0; y < topEnd; y++ {
			dst.SetColored(sx, vp.y+y, PipeChar, core.ColorGreen)
		}
		if topEnd > 0 {
			dst.SetColored(sx, vp.y+topEnd-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := bottomStart; y < vp.h; y++ {
			dst.SetColored(sx, vp.y+y, PipeChar, core.ColorGreen)
		}
		if bottomStart < vp.h {
			dst.SetColored(sx, vp.y+bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Status() == StatusGameOver,
		Paused:   g.paused,
		Seconds:  int(g.engine.Elapsed()),
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
