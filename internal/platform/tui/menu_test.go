package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
)

func sendMenu(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuDifficultyPicker(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "", config.DifficultyNormal)
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("initial difficulty = %s, expected normal", m.Difficulty())
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("right should pick hard, got %s", m.Difficulty())
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("enter should cycle to fixed, got %s", m.Difficulty())
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty should wrap to easy, got %s", m.Difficulty())
	}
	if m.Play() {
		t.Error("changing difficulty should not start a game")
	}
}

func TestMenuUnknownPresetFallsBackToNormal(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "", "")
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("difficulty = %s, expected normal", m.Difficulty())
	}
}

func TestMenuSelections(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		play       bool
		scoreboard bool
		quit       bool
	}{
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, true, false, false},
		{"scores via tab", []tea.KeyMsg{{Type: tea.KeyTab}}, false, true, false},
		{"scores item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, true, false},
		{"quit item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, false, true},
		{"q", []tea.KeyMsg{runeKey('q')}, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig(), "", config.DifficultyEasy)
			for _, k := range tc.keys {
				m = sendMenu(m, k)
			}
			if m.Play() != tc.play || m.WantsScoreboard() != tc.scoreboard || m.IsQuitting() != tc.quit {
				t.Errorf("play=%v scoreboard=%v quit=%v", m.Play(), m.WantsScoreboard(), m.IsQuitting())
			}
		})
	}
}
