package flappy

import (
	"errors"
	"testing"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, WithSeed(1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// floatConfig has no gravity, so the bird hovers at mid-canvas.
func floatConfig() Config {
	cfg := DefaultConfig()
	cfg.Gravity = 0
	return cfg
}

func TestNewEngineIdle(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	if e.Status() != StatusIdle {
		t.Errorf("status = %v, want idle", e.Status())
	}
	b := e.Bird()
	if b.X != 80 || b.Y != 300 || b.Width != BirdSize || b.Height != BirdSize || b.Velocity != 0 {
		t.Errorf("bird = %+v", b)
	}

	e.Update(1)
	if e.Bird().Y != 300 || e.Elapsed() != 0 {
		t.Error("Update must not run while idle")
	}
}

func TestStartAndJump(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	e.Jump()
	if e.Status() != StatusPlaying {
		t.Fatalf("Jump from idle: status = %v, want playing", e.Status())
	}
	if e.Bird().Velocity != 0 {
		t.Errorf("starting jump should not push the bird, velocity = %v", e.Bird().Velocity)
	}

	e.Update(0.25)
	e.Jump()
	if v := e.Bird().Velocity; v != -300 {
		t.Errorf("velocity after jump = %v, want -300", v)
	}
	e.Jump()
	if v := e.Bird().Velocity; v != -300 {
		t.Errorf("jumps should overwrite, not accumulate: velocity = %v", v)
	}

	// Start is only valid from idle.
	y := e.Bird().Y
	e.Start()
	if e.Bird().Y != y || e.Elapsed() != 0.25 {
		t.Error("Start while playing should be ignored")
	}
}

func TestTenStepFall(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	e.Start()

	prevY := e.Bird().Y
	overAt := 0
	for step := 1; step <= 10; step++ {
		e.Update(0.1)
		if overAt != 0 {
			if e.Bird().Y != prevY {
				t.Fatalf("step %d: bird moved after game over", step)
			}
			continue
		}
		if y := e.Bird().Y; y <= prevY {
			t.Fatalf("step %d: y = %v, want greater than %v", step, y, prevY)
		}
		prevY = e.Bird().Y
		if e.Status() == StatusGameOver {
			overAt = step
		}
	}

	if overAt == 0 {
		t.Fatal("bird never hit the floor")
	}
	if overAt != 8 {
		t.Errorf("game over at step %d, want 8", overAt)
	}
	b := e.Bird()
	if b.Y+b.Height < 600 {
		t.Errorf("bird bottom %v should have reached the floor", b.Y+b.Height)
	}
}

func TestCeilingAndFloor(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		velocity float64
	}{
		{"ceiling", 5, -300},
		{"touching ceiling", 0, 0},
		{"floor", 565, 100},
		{"touching floor", 570, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, floatConfig())
			e.Start()
			e.bird.Y = tt.y
			e.bird.Velocity = tt.velocity

			e.Update(0.1)
			if e.Status() != StatusGameOver {
				t.Errorf("y=%v v=%v: status = %v, want game over", tt.y, tt.velocity, e.Status())
			}
		})
	}
}

func TestFirstPipeSpawn(t *testing.T) {
	e := newTestEngine(t, floatConfig())
	e.Start()

	for i := 0; i < 3; i++ {
		e.Update(0.5)
	}
	if len(e.Pipes()) != 0 {
		t.Fatalf("pipe spawned before the interval: %+v", e.Pipes())
	}

	e.Update(0.5)
	pipes := e.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("got %d pipes at t=2s, want 1", len(pipes))
	}

	p := pipes[0]
	if p.X != 300 {
		t.Errorf("pipe x = %v, want 300 (spawned at 400, moved 100)", p.X)
	}
	if p.TopHeight < 50 || p.TopHeight > 600-150-50 {
		t.Errorf("top height %v outside [50, 400]", p.TopHeight)
	}
	if p.BottomY != p.TopHeight+150 || p.Gap != 150 || p.Width != 60 {
		t.Errorf("pipe geometry = %+v", p)
	}
}

func TestScoreOncePerPipe(t *testing.T) {
	e := newTestEngine(t, floatConfig())
	e.Start()
	// Gap 240..390 around the hovering bird (300..330)
	e.pipes.pipes = append(e.pipes.pipes, Pipe{X: 100, TopHeight: 240, BottomY: 390, Width: 60, Gap: 150})

	// 25px per step: right edge 135, 110, 85, 60 ...
	wantScores := []int{0, 0, 0, 1, 1, 1}
	for i, want := range wantScores {
		e.Update(0.125)
		if e.Score() != want {
			t.Fatalf("step %d: score = %d, want %d (pipe x=%v)", i+1, e.Score(), want, e.Pipes())
		}
	}
	if e.Status() != StatusPlaying {
		t.Fatalf("bird in the gap collided: status = %v", e.Status())
	}

	// X = -75 after the seventh step, fully off screen
	e.Update(0.125)
	if len(e.Pipes()) != 0 {
		t.Errorf("off-screen pipe kept: %+v", e.Pipes())
	}
	if e.Score() != 1 {
		t.Errorf("score = %d, want 1", e.Score())
	}
}

func TestPipeCollision(t *testing.T) {
	tests := []struct {
		name string
		pipe Pipe
		hit  bool
	}{
		{"top stub", Pipe{X: 70, TopHeight: 310, BottomY: 460, Width: 60}, true},
		{"bottom stub", Pipe{X: 70, TopHeight: 150, BottomY: 300, Width: 60}, true},
		{"inside gap", Pipe{X: 70, TopHeight: 250, BottomY: 400, Width: 60}, false},
		{"ahead of bird", Pipe{X: 200, TopHeight: 500, BottomY: 550, Width: 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, floatConfig())
			e.Start()
			e.pipes.pipes = append(e.pipes.pipes, tt.pipe)

			e.Update(0.01)
			if got := e.Status() == StatusGameOver; got != tt.hit {
				t.Errorf("game over = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestPipesStayOrderedAndOnScreen(t *testing.T) {
	cfg := floatConfig()
	cfg.PipeGap = 500 // Gap always spans 50..550
	e := newTestEngine(t, cfg)
	e.Start()

	for i := 0; i < 100; i++ {
		e.Update(0.1)

		pipes := e.Pipes()
		for j, p := range pipes {
			if p.Right() <= 0 {
				t.Fatalf("t=%.1f: off-screen pipe kept", e.Elapsed())
			}
			if j > 0 && pipes[j-1].X >= p.X {
				t.Fatalf("t=%.1f: pipes out of spawn order", e.Elapsed())
			}
		}
	}

	if e.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", e.Status())
	}
	if e.Score() < 3 {
		t.Errorf("score = %d after 10s, want at least 3", e.Score())
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	e.Start()
	for e.Status() == StatusPlaying {
		e.Update(0.1)
	}

	b := e.Bird()
	e.Jump()
	e.Start()
	e.Update(0.1)
	if e.Status() != StatusGameOver || e.Bird() != b {
		t.Error("game over should ignore Jump, Start and Update")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	e.Start()
	e.Update(-1)

	if e.Elapsed() != 0 || e.Bird().Y != 300 {
		t.Error("negative dt should not advance the simulation")
	}
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(t, floatConfig())
	e.Start()
	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}
	first := e.Pipes()

	e.Reset()
	if e.Status() != StatusIdle || e.Score() != 0 || e.Elapsed() != 0 || len(e.Pipes()) != 0 {
		t.Fatalf("Reset left state behind: status %v score %d elapsed %v pipes %d",
			e.Status(), e.Score(), e.Elapsed(), len(e.Pipes()))
	}
	if e.Bird().Y != 300 {
		t.Errorf("bird y = %v, want re-centred at 300", e.Bird().Y)
	}

	// Same seed, same pipe sequence
	e.Start()
	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}
	again := e.Pipes()
	if len(first) != len(again) {
		t.Fatalf("pipe count %d vs %d after replay", len(first), len(again))
	}
	for i := range first {
		if first[i].TopHeight != again[i].TopHeight {
			t.Errorf("pipe %d gap differs after Reset", i)
		}
	}
}

func TestPipesIsACopy(t *testing.T) {
	e := newTestEngine(t, floatConfig())
	e.Start()
	for i := 0; i < 21; i++ {
		e.Update(0.1)
	}
	pipes := e.Pipes()
	if len(pipes) == 0 {
		t.Fatal("expected a pipe")
	}
	pipes[0].X = -1000

	if e.Pipes()[0].X == -1000 {
		t.Error("mutating Pipes() result changed the engine")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.CanvasWidth = 0 }, "canvas width"},
		{"negative height", func(c *Config) { c.CanvasHeight = -1 }, "canvas height"},
		{"zero pipe width", func(c *Config) { c.PipeWidth = 0 }, "pipe width"},
		{"zero interval", func(c *Config) { c.PipeSpawnInterval = 0 }, "pipe spawn interval"},
		{"negative gravity", func(c *Config) { c.Gravity = -10 }, "gravity"},
		{"negative speed", func(c *Config) { c.PipeSpeed = -1 }, "pipe speed"},
		{"gap too tall", func(c *Config) { c.PipeGap = 501 }, "pipe gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := NewEngine(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("err = %v, want a ConfigError on %q", err, tt.field)
			}
		})
	}
}

func TestResetWith(t *testing.T) {
	e := newTestEngine(t, floatConfig())
	e.Start()
	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}

	wide := floatConfig()
	wide.CanvasWidth = 600
	wide.CanvasHeight = 800
	if err := e.ResetWith(wide); err != nil {
		t.Fatalf("ResetWith: %v", err)
	}
	if e.Status() != StatusIdle || len(e.Pipes()) != 0 || e.Score() != 0 {
		t.Fatalf("ResetWith left state behind: status %v pipes %d score %d",
			e.Status(), len(e.Pipes()), e.Score())
	}
	if b := e.Bird(); b.X != 120 || b.Y != 400 {
		t.Errorf("bird at (%v,%v), want (120,400) on the new canvas", b.X, b.Y)
	}
	if e.Config() != wide {
		t.Errorf("Config() = %+v, want %+v", e.Config(), wide)
	}

	bad := wide
	bad.PipeWidth = 0
	if err := e.ResetWith(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("ResetWith(bad) = %v, want ErrInvalidConfig", err)
	}
	if e.Config() != wide {
		t.Error("a rejected config must not replace the current one")
	}

	e.Start()
	for i := 0; i < 30 && len(e.Pipes()) == 0; i++ {
		e.Update(0.1)
	}
	pipes := e.Pipes()
	if len(pipes) == 0 {
		t.Fatal("no pipe spawned after ResetWith")
	}
	want := wide.CanvasWidth - wide.PipeSpeed*0.1
	if d := pipes[0].X - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("first pipe at x=%v, want %v from the new right edge", pipes[0].X, want)
	}
}
