package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/applog"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// boardNamer is implemented by games whose records are kept per board.
type boardNamer interface {
	BoardName() string
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	best       int  // Stored best score when the run started
	newBest    bool // Current run beat the stored best
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = applog.Discard()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.loadBest()
	return m
}

// loadBest reads the persisted best score. Storage errors only cost the HUD.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot load best score", "game", m.game.ID(), "err", err)
		return
	}
	m.best = best
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Restart is only honoured by handleTick once the game is over.
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) || m.inputFrame.Has(core.ActionBack) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// Games lay themselves out on every Render, so state survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.newBest = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.updateBest()

	// Save results on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config)
}

// updateBest stores the live score as soon as it beats the best, so a
// record survives quitting mid-run.
func (m *Model) updateBest() {
	score := m.gameState.Score
	if score <= m.best {
		return
	}
	if !m.newBest {
		m.logger.Info("new best score", "game", m.game.ID(), "score", score)
	}
	m.best = score
	m.newBest = true

	if m.store == nil {
		return
	}
	if _, err := m.store.UpdateBestScore(m.game.ID(), score); err != nil {
		m.logger.Error("cannot update best score", "game", m.game.ID(), "err", err)
	}
}

// recordResult persists a finished run. Failures are logged; play goes on.
func (m *Model) recordResult() {
	id := m.game.ID()
	st := m.gameState
	m.logger.Info("game over", "game", id, "score", st.Score, "won", st.Won, "seconds", st.Seconds)

	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(id, st.Score); err != nil {
			m.logger.Error("cannot save score", "game", id, "err", err)
		}
	}

	if st.Won {
		board := ""
		if bn, ok := m.game.(boardNamer); ok {
			board = bn.BoardName()
		}
		if _, err := m.store.SaveTime(id, board, st.Seconds); err != nil {
			m.logger.Error("cannot save time", "game", id, "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// drawBest overlays the best score on the top row of scored games.
func (m Model) drawBest() {
	best := max(m.best, m.gameState.Score)
	if best == 0 {
		return
	}
	text := fmt.Sprintf(" Best: %d ", best)
	m.screen.DrawText(m.screen.Width()-len(text)-2, 0, text)

	if m.newBest && m.gameState.GameOver {
		banner := " NEW BEST! "
		m.screen.DrawTextColored((m.screen.Width()-len(banner))/2, 1, banner, core.ColorBrightYellow)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	m.drawBest()

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks map to board cells
	)

	_, err := p.Run()
	return err
}
