package config

import (
	"testing"
	"time"
)

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 40},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{10, 0.25},
		{40, 1.0},
		{400, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %g, expected %g", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := d.Level(5, 0); got != 0.75 {
		t.Errorf("Level(5) = %g, expected 0.75", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3})
	if fixed.IsEnabled() {
		t.Error("disabled manager should report IsEnabled() = false")
	}
	if got := fixed.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled manager Level = %g, expected 0.3", got)
	}
}

func TestDifficultyByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(0, 300); got != 0.5 {
		t.Errorf("Level(ticks=300) = %g, expected 0.5", got)
	}
}

func TestFallTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	base := 2 * time.Second
	floor := 500 * time.Millisecond

	if got := d.FallTime(base, floor, 0, 0); got != base {
		t.Errorf("FallTime at level 0 = %s, expected %s", got, base)
	}
	if got := d.FallTime(base, floor, 10, 0); got != time.Second {
		t.Errorf("FallTime at level 1 = %s, expected 1s", got)
	}
	if got := d.FallTime(base, 1500*time.Millisecond, 10, 0); got != 1500*time.Millisecond {
		t.Errorf("FallTime should respect the floor, got %s", got)
	}
}
