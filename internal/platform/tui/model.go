package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-cascade/internal/cascade"
	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
	"github.com/vovakirdan/color-cascade/internal/registry"
	"github.com/vovakirdan/color-cascade/internal/storage"
)

// Observable is implemented by games that report session events.
type Observable interface {
	AddObserver(obs cascade.Observer)
}

// DifficultySetter is implemented by games with difficulty presets.
type DifficultySetter interface {
	SetDifficulty(preset config.DifficultyPreset)
}

// Abandoner is implemented by games that can end a round the player walks
// away from.
type Abandoner interface {
	Abandon()
}

// NewGame creates the cascade game with the given preset applied.
func NewGame(preset config.DifficultyPreset) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if ds, ok := game.(DifficultySetter); ok {
		ds.SetDifficulty(preset)
	}
	return game, nil
}

// PlayOptions describe who is playing and how scores are labelled.
type PlayOptions struct {
	Player     string
	Difficulty string
	Logger     *log.Logger
	Observers  []cascade.Observer // Attached to games implementing Observable
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       PlayOptions
	keyMapper  *KeyMapper
	tickGen    uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if obs, ok := game.(Observable); ok {
		for _, o := range opts.Observers {
			obs.AddObserver(o)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		tickGen:    nextTickGen(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Layout is computed per frame, so a resize keeps the round going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
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

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.abandon()
		return m, tea.Quit
	}

	if action == core.ActionBack {
		// Back leaves a running round only through pause.
		if m.inRound() {
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		m.abandon()
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// abandon ends a round left unfinished so observers (music, session logs)
// see it end. The score of an abandoned round is not saved.
func (m *Model) abandon() {
	if a, ok := m.game.(Abandoner); ok {
		m.scoreSaved = true
		a.Abandon()
	}
}

// inRound reports whether a round is running and unpaused.
func (m Model) inRound() bool {
	s := m.gameState
	return s.Started && !s.GameOver && !s.Paused
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveScore records the finished round once. Empty rounds are not saved.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	rec := storage.ScoreRecord{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Score:      m.gameState.Score,
		BestCombo:  m.gameState.BestCombo,
		Difficulty: m.opts.Difficulty,
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.opts.Logger.Warn("could not save score", "player", rec.Player, "score", rec.Score, "error", err)
		return
	}
	m.opts.Logger.Debug("score saved", "player", rec.Player, "score", rec.Score, "best_combo", rec.BestCombo)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".color-cascade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
