// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"fmt"
	"time"
)

// CascadeConfig contains all configuration for Color Cascade.
type CascadeConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines how long shapes fall and how taps are batched.
type TimingConfig struct {
	FallTime    time.Duration `yaml:"fall_time"`
	MinFallTime time.Duration `yaml:"min_fall_time"`
	GracePeriod time.Duration `yaml:"grace_period"`
}

// RulesConfig defines match rule parameters.
type RulesConfig struct {
	ExpandAfter int `yaml:"expand_after"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to fall speed at max difficulty
}

// Validate reports the first invalid setting.
func (c CascadeConfig) Validate() error {
	switch {
	case c.Timing.FallTime <= 0:
		return fmt.Errorf("config: timing.fall_time must be positive, got %s", c.Timing.FallTime)
	case c.Timing.MinFallTime <= 0 || c.Timing.MinFallTime > c.Timing.FallTime:
		return fmt.Errorf("config: timing.min_fall_time must be in (0, fall_time], got %s", c.Timing.MinFallTime)
	case c.Timing.GracePeriod <= 0 || c.Timing.GracePeriod >= c.Timing.MinFallTime:
		return fmt.Errorf("config: timing.grace_period must be in (0, min_fall_time), got %s", c.Timing.GracePeriod)
	case c.Rules.ExpandAfter < 0:
		return fmt.Errorf("config: rules.expand_after must not be negative, got %d", c.Rules.ExpandAfter)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("config: difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel)
	case c.Difficulty.Scaling.SpeedMultiplier < 0:
		return fmt.Errorf("config: difficulty.scaling.speed_multiplier must not be negative")
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset parses a preset name. The empty string means "use the config
// as loaded" and is returned unchanged.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config for a difficulty preset. An empty preset
// leaves it untouched.
func ApplyPreset(cfg *CascadeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard also shrinks the tap window.
	if preset == DifficultyHard && cfg.Timing.GracePeriod > 60*time.Millisecond {
		cfg.Timing.GracePeriod = 60 * time.Millisecond
	}
}
