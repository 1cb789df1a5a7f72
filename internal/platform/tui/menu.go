package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
	"github.com/vovakirdan/color-cascade/internal/storage"
)

// MenuItem is one selectable row of the main menu.
type MenuItem int

const (
	MenuItemPlay MenuItem = iota
	MenuItemDifficulty
	MenuItemScores
	MenuItemQuit
)

var menuItems = []MenuItem{MenuItemPlay, MenuItemDifficulty, MenuItemScores, MenuItemQuit}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu: play, difficulty
// picker, scoreboard and quit.
type MenuModel struct {
	cursor         int
	difficulty     int // Index into config.Presets()
	width          int
	height         int
	store          *storage.Store
	player         string
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with the given preset selected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string, preset config.DifficultyPreset) MenuModel {
	idx := slices.Index(config.Presets(), preset)
	if idx < 0 {
		idx = slices.Index(config.Presets(), config.DifficultyNormal)
	}

	return MenuModel{
		difficulty: idx,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		player:     player,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.cycleDifficulty(-1)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.cycleDifficulty(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuItemPlay:
			m.play = true
			return m, tea.Quit
		case MenuItemDifficulty:
			m.cycleDifficulty(1)
		case MenuItemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(delta int) {
	n := len(config.Presets())
	m.difficulty = (m.difficulty + delta + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C O L O R   C A S C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Tap the colors that make up each falling shape", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := m.itemLabel(item)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if best := m.bestLine(); best != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render(best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLabel(item MenuItem) string {
	switch item {
	case MenuItemPlay:
		return "Play"
	case MenuItemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case MenuItemScores:
		return "High Scores"
	case MenuItemQuit:
		return "Quit"
	default:
		return ""
	}
}

// bestLine shows the player's and overall best scores when known.
func (m MenuModel) bestLine() string {
	if m.store == nil {
		return ""
	}
	high, err := m.store.HighScore(gameID)
	if err != nil || high == 0 {
		return ""
	}
	if m.player == "" {
		return fmt.Sprintf("High score: %d", high)
	}
	mine, err := m.store.PlayerBest(gameID, m.player)
	if err != nil {
		return fmt.Sprintf("High score: %d", high)
	}
	return fmt.Sprintf("High score: %d  |  Your best: %d", high, mine)
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets()[m.difficulty]
}

// Play returns true if user chose to start a game.
func (m MenuModel) Play() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, player string, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, player, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: preset, Quit: true}, nil
	}

	return MenuResult{
		Play:            m.Play(),
		Difficulty:      m.Difficulty(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (!m.Play() && !m.WantsScoreboard()),
	}, nil
}
