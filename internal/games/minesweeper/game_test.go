package minesweeper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     7,
	}
}

// useBoard points the game at a temp config file and restores the package
// settings afterwards.
func useBoard(t *testing.T, yaml string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
	if yaml == "" {
		return
	}
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("minesweeper") {
		t.Fatal("minesweeper not registered")
	}
	g, err := registry.Create("minesweeper")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Minesweeper" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGameDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset string
		want   Config
	}{
		{"", Beginner},
		{"beginner", Beginner},
		{"intermediate", Intermediate},
		{"expert", Expert},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			useBoard(t, "")
			SetDifficultyPreset(tt.preset)

			g := New()
			g.Reset(testRuntime())
			if got := g.Engine().Config(); got != tt.want {
				t.Errorf("board = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGameCursor(t *testing.T) {
	useBoard(t, "")
	g := New()
	g.Reset(testRuntime())

	if r, c := g.Cursor(); r != 4 || c != 4 {
		t.Fatalf("cursor starts at (%d,%d), want (4,4)", r, c)
	}

	for i := 0; i < 20; i++ {
		press(g, core.ActionLeft)
		press(g, core.ActionDown)
	}
	if r, c := g.Cursor(); r != 8 || c != 0 {
		t.Errorf("cursor = (%d,%d), want clamped to (8,0)", r, c)
	}

	press(g, core.ActionUp)
	press(g, core.ActionRight)
	if r, c := g.Cursor(); r != 7 || c != 1 {
		t.Errorf("cursor = (%d,%d), want (7,1)", r, c)
	}
}

func TestGameRevealAndFlagAtCursor(t *testing.T) {
	useBoard(t, "")
	g := New()
	g.Reset(testRuntime())

	press(g, core.ActionSecondary)
	if cell, _ := g.Engine().Cell(4, 4); cell.State != Flagged {
		t.Fatalf("cursor cell = %v, want flagged", cell.State)
	}
	press(g, core.ActionSecondary)
	press(g, core.ActionPrimary)

	if cell, _ := g.Engine().Cell(4, 4); cell.State != Revealed || cell.Mine {
		t.Errorf("cursor cell = %+v, want a revealed safe cell", cell)
	}
	if g.Engine().Status() == StatusIdle {
		t.Error("first reveal should start the game")
	}
}

func TestGamePointer(t *testing.T) {
	useBoard(t, "")
	g := New()
	g.Reset(testRuntime())
	g.Render(core.NewScreen(80, 24))

	x := g.originX + 3*cellStride
	y := g.originY + 2
	if row, col, ok := g.CellAt(x, y); !ok || row != 2 || col != 3 {
		t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (2,3,true)", x, y, row, col, ok)
	}

	in := core.NewInputFrame()
	in.SetPointer(core.ActionSecondary, x, y)
	g.Step(in)

	if cell, _ := g.Engine().Cell(2, 3); cell.State != Flagged {
		t.Errorf("clicked cell = %v, want flagged", cell.State)
	}
	if r, c := g.Cursor(); r != 2 || c != 3 {
		t.Errorf("cursor = (%d,%d), want it to follow the click", r, c)
	}

	// Outside the board
	in = core.NewInputFrame()
	in.SetPointer(core.ActionPrimary, 0, 0)
	g.Step(in)
	if g.Engine().Status() != StatusIdle {
		t.Error("a click outside the board should not reveal anything")
	}
}

func TestGameWinState(t *testing.T) {
	useBoard(t, "difficulty: custom\nboards:\n  custom:\n    rows: 4\n    cols: 6\n    mines: 0\n")
	clock := core.NewManualClock(time.Unix(100, 0))
	g := New(WithClock(clock))
	g.Reset(testRuntime())

	if got := g.Engine().Config(); got != (Config{Rows: 4, Cols: 6, Mines: 0}) {
		t.Fatalf("board = %+v", got)
	}

	res := press(g, core.ActionPrimary)
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("state = %+v, want a won game", res.State)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, want 0 for a timed game", res.State.Score)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN") {
		t.Error("win banner not rendered")
	}
}

func TestGameSecondsFromClock(t *testing.T) {
	useBoard(t, "")
	clock := core.NewManualClock(time.Unix(100, 0))
	g := New(WithClock(clock))
	g.Reset(testRuntime())

	press(g, core.ActionPrimary)
	clock.Advance(5 * time.Second)

	if st := g.State(); !st.GameOver && st.Seconds != 5 {
		t.Errorf("Seconds = %d, want 5", st.Seconds)
	}
}

func TestGameInvalidBoardFallsBack(t *testing.T) {
	useBoard(t, "difficulty: custom\nboards:\n  custom:\n    rows: 3\n    cols: 3\n    mines: 5\n")
	g := New()
	g.Reset(testRuntime())

	if got := g.Engine().Config(); got != Beginner {
		t.Errorf("board = %+v, want beginner fallback", got)
	}
}

func TestGameRender(t *testing.T) {
	useBoard(t, "")
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Mines: 10") {
		t.Error("HUD should show the remaining mine count")
	}
	if !strings.Contains(out, "Time: 000") {
		t.Error("HUD should show the timer")
	}
	if got := strings.Count(out, string(HiddenChar)); got != 81 {
		t.Errorf("%d hidden glyphs, want 81", got)
	}
	if screen.Get(g.originX+4*cellStride-1, g.originY+4) != CursorLeft {
		t.Error("cursor bracket missing")
	}
}
