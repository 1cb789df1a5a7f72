package tui

import (
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-cascade/internal/cascade"
	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
	"github.com/vovakirdan/color-cascade/internal/games/colorcascade"
	"github.com/vovakirdan/color-cascade/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *colorcascade.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	game, err := NewGame(config.DifficultyFixed)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	m := NewModel(game, store, cfg, PlayOptions{Player: "ada", Difficulty: string(config.DifficultyFixed)})
	m.Init()
	return m, game.(*colorcascade.Game)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg{Gen: m.tickGen})
	}
	return m
}

func tapKey(c cascade.Color) tea.KeyMsg {
	idx := slices.Index(cascade.FullPalette(), c)
	return runeKey(rune('1' + idx))
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m, game := newTestModel(t, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 1)
	if !m.gameState.Started {
		t.Fatal("Enter should start the round")
	}

	m = send(m, tapKey(game.Snapshot().Session.Current))
	m = tick(m, 10)
	if m.gameState.Score != 1 {
		t.Fatalf("score = %d, expected 1", m.gameState.Score)
	}

	// Let the next shape land.
	m = tick(m, 200)
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}
	m = tick(m, 30)

	scores, err := store.TopScores(colorcascade.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 1 || got.Player != "ada" || got.Difficulty != "fixed" || got.BestCombo != 1 {
		t.Errorf("saved %+v", got)
	}
}

func TestModelBackFromStartScreen(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = tick(m, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("Esc on the start screen should go back to the menu")
	}
	if cmd == nil {
		t.Error("going back should end the program")
	}
}

func TestModelBackPausesRunningRound(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, runeKey(' '))
	m = tick(m, 1)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m, 1)
	if m.BackToMenu() {
		t.Fatal("Esc during a round should not leave it")
	}
	if !m.gameState.Paused {
		t.Error("Esc during a round should pause")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, game := newTestModel(t, nil)
	before := game.Snapshot().Tick

	m = send(m, TickMsg{Gen: m.tickGen + 1000})
	if game.Snapshot().Tick != before {
		t.Error("ticks from another model must be ignored")
	}

	tick(m, 1)
	if game.Snapshot().Tick != before+1 {
		t.Error("own ticks should advance the game")
	}
}

func TestModelBackFromPauseEndsRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m, game := newTestModel(t, store)
	var ended []int
	game.AddObserver(cascade.ObserverFuncs{Ended: func(final int) { ended = append(ended, final) }})

	m = send(m, runeKey(' '))
	m = tick(m, 1)
	m = send(m, tapKey(game.Snapshot().Session.Current))
	m = tick(m, 10)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m, 1)
	if !m.gameState.Paused {
		t.Fatal("first Esc should pause")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("Esc from pause should go back to the menu")
	}

	if game.Snapshot().Session.Active {
		t.Error("leaving for the menu should end the round")
	}
	if len(ended) != 1 || ended[0] != 1 {
		t.Errorf("ended = %v, expected [1]", ended)
	}

	scores, err := store.TopScores(colorcascade.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("abandoned round should not be saved, got %d scores", len(scores))
	}
}
