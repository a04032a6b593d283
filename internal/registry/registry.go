// Package registry maps game IDs to factories. The flappy and minesweeper
// packages register themselves in init, so importing a game package is all
// the CLI needs to offer it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Game is what the TUI drives. Implementations wrap a pure engine
// (flappy.Engine, minesweeper.Engine) and know nothing about Bubble Tea.
type Game interface {
	// ID is the registry key, also used as the game_id in score storage.
	ID() string

	// Title is the display name, e.g. "Flappy Bird".
	Title() string

	// Reset starts a fresh round sized for cfg's screen and seeded by cfg.Seed.
	// Called once at start and again on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick. Flappy integrates cfg.TickSeconds of physics;
	// Minesweeper applies cursor moves, reveals and flags.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, game over, win and elapsed seconds.
	State() core.GameState
}

// GameInfo describes a registered game for menus and `arcade list`.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics when id is already taken or when
// the factory's games report a different ID, since scores are keyed by it.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: game registered as %q reports ID %q", id, g.ID()))
	}

	factories[id] = f
	titles[id] = g.Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the game. The error wraps ErrUnknownGame
// when id is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Title returns the display name of a registered game without creating it.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	title, ok := titles[id]
	return title, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
