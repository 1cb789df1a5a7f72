package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const cascadeFile = "cascade.yaml"

// LoadCascade loads the Color Cascade configuration.
// Search order: customPath -> ~/.color-cascade/configs/cascade.yaml ->
// ./configs/cascade.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other locations are
// skipped when missing or invalid.
func LoadCascade(customPath string) (CascadeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CascadeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CascadeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", cascadeFile)}
	if userCfgPath := userConfigPath(cascadeFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultCascadeYAML); err == nil {
		return cfg, nil
	}
	return DefaultCascadeConfig(), nil
}

// Parse decodes YAML on top of the defaults and validates the result, so a
// file only needs the keys it changes.
func Parse(data []byte) (CascadeConfig, error) {
	cfg := DefaultCascadeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CascadeConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CascadeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg CascadeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".color-cascade", "configs", filename)
}
