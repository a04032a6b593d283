package flappy

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Bird geometry relative to the canvas
const (
	BirdXRatio = 0.2 // Bird's fixed x as a fraction of canvas width
	BirdSize   = 30  // Bird hitbox width and height, px
	PipeMargin = 50  // Minimum space above and below a pipe gap, px
)

// Status is the lifecycle state of a Flappy Bird game.
type Status int

const (
	StatusIdle     Status = iota // Waiting for the first flap
	StatusPlaying                // Physics running
	StatusGameOver               // Bird hit a pipe, the ceiling or the floor
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Config holds the simulation constants. Distances are canvas pixels,
// speeds px/s, gravity px/s², the spawn interval seconds.
type Config struct {
	CanvasWidth       float64
	CanvasHeight      float64
	Gravity           float64
	JumpStrength      float64
	PipeSpeed         float64
	PipeWidth         float64
	PipeGap           float64
	PipeSpawnInterval float64
}

// DefaultConfig returns the standard 400x600 tuning.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:       400,
		CanvasHeight:      600,
		Gravity:           800,
		JumpStrength:      300,
		PipeSpeed:         200,
		PipeWidth:         60,
		PipeGap:           150,
		PipeSpawnInterval: 2,
	}
}

// Validate checks that the constants describe a playable field.
func (c Config) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"canvas width", c.CanvasWidth},
		{"canvas height", c.CanvasHeight},
		{"pipe width", c.PipeWidth},
		{"pipe gap", c.PipeGap},
		{"pipe spawn interval", c.PipeSpawnInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ConfigError{Field: p.field, Value: p.value, Reason: "must be positive"}
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"gravity", c.Gravity},
		{"jump strength", c.JumpStrength},
		{"pipe speed", c.PipeSpeed},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return &ConfigError{Field: p.field, Value: p.value, Reason: "must not be negative"}
		}
	}

	if c.CanvasHeight-c.PipeGap < 2*PipeMargin {
		return &ConfigError{
			Field:  "pipe gap",
			Value:  c.PipeGap,
			Reason: fmt.Sprintf("needs %dpx above and below within a %g px canvas", PipeMargin, c.CanvasHeight),
		}
	}
	return nil
}

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("flappy: invalid config")

// ConfigError reports simulation constants that cannot be played.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("flappy: invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) succeed.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Bird is the player. Only Y and Velocity change during play.
type Bird struct {
	X        float64
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive is downward
	Width    float64
	Height   float64
}

// Rect returns the bird's hitbox.
func (b Bird) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Engine is a continuous-time Flappy Bird simulation advanced by Update.
// It is not safe for concurrent use.
type Engine struct {
	cfg     Config
	seed    int64
	bird    Bird
	pipes   *PipeManager
	status  Status
	score   int
	elapsed float64 // Seconds of simulated play
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSeed seeds pipe gap placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// NewEngine validates cfg and returns an idle game.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:  cfg,
		seed: time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.pipes = NewPipeManager(cfg, e.seed)
	e.Reset()
	return e, nil
}

// Reset returns to Idle with no pipes, zero score and the bird re-centred.
// The pipe sequence restarts from the engine's seed.
func (e *Engine) Reset() {
	e.status = StatusIdle
	e.pipes.Reset(e.seed)
	e.clearRun()
}

// ResetWith validates cfg, adopts it and resets to Idle. On error the engine
// keeps its current config and state.
func (e *Engine) ResetWith(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.pipes = NewPipeManager(cfg, e.seed)
	e.Reset()
	return nil
}

func (e *Engine) clearRun() {
	e.score = 0
	e.elapsed = 0
	e.pipes.Clear()
	e.bird = Bird{
		X:      e.cfg.CanvasWidth * BirdXRatio,
		Y:      e.cfg.CanvasHeight / 2,
		Width:  BirdSize,
		Height: BirdSize,
	}
}

// Start begins play. Ignored unless the game is Idle.
func (e *Engine) Start() {
	if e.status != StatusIdle {
		return
	}
	e.clearRun()
	e.status = StatusPlaying
}

// Jump sets the bird's velocity to the full upward jump speed. From Idle it
// starts the game instead.
func (e *Engine) Jump() {
	switch e.status {
	case StatusPlaying:
		e.bird.Velocity = -e.cfg.JumpStrength
	case StatusIdle:
		e.Start()
	}
}

// Update advances the simulation by dt seconds using a single explicit
// Euler step. Does nothing unless Playing; negative dt is ignored.
func (e *Engine) Update(dt float64) {
	if e.status != StatusPlaying || dt < 0 {
		return
	}

	e.elapsed += dt

	e.bird.Velocity += e.cfg.Gravity * dt
	e.bird.Y += e.bird.Velocity * dt

	e.score += e.pipes.Update(e.elapsed, dt, e.bird.X)

	if e.collides() {
		e.status = StatusGameOver
	}
}

func (e *Engine) collides() bool {
	if e.bird.Y <= 0 || e.bird.Y+e.bird.Height >= e.cfg.CanvasHeight {
		return true
	}
	return e.pipes.CheckCollision(e.bird.Rect())
}

// Bird returns a copy of the bird.
func (e *Engine) Bird() Bird {
	return e.bird
}

// Pipes returns a copy of the active pipes, oldest first.
func (e *Engine) Pipes() []Pipe {
	return e.pipes.Pipes()
}

// Score returns the number of pipes passed this run.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Elapsed returns the simulated play time in seconds.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Config returns the simulation constants.
func (e *Engine) Config() Config {
	return e.cfg
}
