package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/cascade.yaml
var defaultCascadeYAML []byte

// DefaultCascadeConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		Timing: TimingConfig{
			FallTime:    2 * time.Second,
			MinFallTime: 700 * time.Millisecond,
			GracePeriod: 100 * time.Millisecond,
		},
		Rules: RulesConfig{
			ExpandAfter: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.8,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCascadeYAML
}
