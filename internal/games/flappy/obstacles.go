package flappy

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Pipe is a top and bottom stub sharing one vertical gap.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom of the top stub
	BottomY   float64 // Top of the bottom stub, TopHeight + Gap
	Width     float64
	Gap       float64
	Passed    bool // Whether the bird has cleared this pipe (for scoring)
}

// Right returns the pipe's right edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// TopRect returns the collision rectangle for the top stub.
func (p Pipe) TopRect() core.RectF {
	return core.RectF{X: p.X, Y: 0, W: p.Width, H: p.TopHeight}
}

// BottomRect returns the collision rectangle for the bottom stub.
func (p Pipe) BottomRect(canvasH float64) core.RectF {
	return core.RectF{X: p.X, Y: p.BottomY, W: p.Width, H: canvasH - p.BottomY}
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes     []Pipe
	rng       *rand.Rand
	cfg       Config
	lastSpawn float64 // Elapsed time of the last spawn
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(cfg Config, seed int64) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
	pm.Clear()
}

// Clear drops all pipes and restarts the spawn timer, keeping the RNG.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
	pm.lastSpawn = 0
}

// Update spawns a pipe when the interval has elapsed, moves every pipe left
// by dt worth of travel, and drops pipes that left the canvas.
// Returns the number of pipes that were passed this frame (for scoring).
func (pm *PipeManager) Update(elapsed, dt, birdX float64) int {
	if elapsed-pm.lastSpawn >= pm.cfg.PipeSpawnInterval {
		pm.spawnPipe()
		pm.lastSpawn = elapsed
	}

	passed := 0
	shift := pm.cfg.PipeSpeed * dt
	for i := range pm.pipes {
		pm.pipes[i].X -= shift

		if !pm.pipes[i].Passed && pm.pipes[i].Right() < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Remove pipes that have moved off the left side
	validPipes := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.Right() > 0 {
			validPipes = append(validPipes, p)
		}
	}
	pm.pipes = validPipes

	return passed
}

// spawnPipe adds a pipe at the right edge of the canvas with its gap placed
// uniformly between the top and bottom margins.
func (pm *PipeManager) spawnPipe() {
	minTop := float64(PipeMargin)
	maxTop := pm.cfg.CanvasHeight - pm.cfg.PipeGap - PipeMargin
	top := minTop + pm.rng.Float64()*(maxTop-minTop)

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.cfg.CanvasWidth,
		TopHeight: top,
		BottomY:   top + pm.cfg.PipeGap,
		Width:     pm.cfg.PipeWidth,
		Gap:       pm.cfg.PipeGap,
	})
}

// Pipes returns a copy of the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// CheckCollision tests if the bird's hitbox overlaps a pipe horizontally
// while sticking out of that pipe's gap.
func (pm *PipeManager) CheckCollision(bird core.RectF) bool {
	for _, p := range pm.pipes {
		if !bird.OverlapsX(p.TopRect()) {
			continue
		}
		if bird.Y < p.TopHeight || bird.Bottom() > p.BottomY {
			return true
		}
	}
	return false
}
