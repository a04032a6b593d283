package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// DifficultyModel lets users choose a Minesweeper board before playing.
type DifficultyModel struct {
	options   []config.DifficultyPreset
	boards    config.MinesweeperConfig
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a board selector. boards supplies the sizes
// shown next to each preset; the file's own choice starts highlighted.
func NewDifficultyModel(boards config.MinesweeperConfig, width, height int) DifficultyModel {
	options := config.MinesweeperPresets()
	if _, ok := boards.Boards[string(config.DifficultyCustom)]; ok {
		options = append(options, config.DifficultyCustom)
	}

	cursor := 0
	for i, p := range options {
		if p == boards.Difficulty {
			cursor = i
		}
	}

	return DifficultyModel{
		options:   options,
		boards:    boards,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.options[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board list.
func (m DifficultyModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M I N E S W E E P E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	for i, preset := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		c := m.boards
		c.Difficulty = preset
		board := c.Board()
		line := fmt.Sprintf("%s%-13s %2dx%-2d %3d mines", cursor, preset, board.Cols, board.Rows, board.Mines)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector asks for a Minesweeper board. It returns an empty
// preset when the user backed out or quit.
func RunDifficultySelector(boards config.MinesweeperConfig, cfg core.RuntimeConfig) (config.DifficultyPreset, error) {
	model := NewDifficultyModel(boards, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	preset, _ := m.Selected()
	return preset, nil
}
