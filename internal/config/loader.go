package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up in the user and local config dirs.
const configFileName = "walljump.yaml"

// Load loads Wall Jump configuration.
// Search order: customPath -> ~/.arcade/configs/walljump.yaml ->
// ./configs/walljump.yaml -> embedded default -> hard-coded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (WallJumpConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", configFileName)); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultWallJumpYAML)
	if err != nil {
		return DefaultWallJumpConfig(), nil
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (WallJumpConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WallJumpConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return WallJumpConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates it.
func Parse(data []byte) (WallJumpConfig, error) {
	cfg := DefaultWallJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WallJumpConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return WallJumpConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config back to YAML.
func Marshal(cfg WallJumpConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *WallJumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HeadStart = 0
		cfg.Difficulty.SpeedupFactor /= 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HeadStart = 0
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HeadStart = 6
		cfg.Difficulty.SpeedScaling = 0.5
	}
}
