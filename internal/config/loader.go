package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure in this package.
var ErrInvalidConfig = errors.New("config: invalid value")

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := load(customPath, "flappy.yaml", defaultFlappyYAML, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	return load(customPath, "minesweeper.yaml", defaultMinesweeperYAML, DefaultMinesweeperConfig)
}

// load walks the search order for one game's file. A broken custom file is
// an error; broken files found on the search path are skipped.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	// Start from defaults so a partial file only overrides what it names
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if parsed, ok := tryFile(userCfgPath, fallback); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryFile(filepath.Join("configs", filename), fallback); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects values the physics loop cannot run with.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_strength", c.Physics.JumpStrength},
		{"physics.pipe_speed", c.Physics.PipeSpeed},
		{"pipes.width", c.Pipes.Width},
		{"pipes.gap", c.Pipes.Gap},
		{"pipes.spawn_interval", c.Pipes.SpawnInterval},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return fmt.Errorf("%w: flappy %s must be positive, got %g", ErrInvalidConfig, ch.name, ch.value)
		}
	}
	if c.Pipes.Gap >= c.Canvas.Height {
		return fmt.Errorf("%w: flappy pipes.gap %g must be smaller than canvas.height %g",
			ErrInvalidConfig, c.Pipes.Gap, c.Canvas.Height)
	}
	return nil
}

// ApplyMinesweeperPreset selects a board preset. The empty preset keeps the
// file's choice.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}
