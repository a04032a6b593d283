// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Units are canvas pixels and seconds.
type FlappyConfig struct {
	Canvas  FlappyCanvas  `yaml:"canvas"`
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
}

// FlappyCanvas defines the size of the simulated play field.
type FlappyCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, px/s²
	JumpStrength float64 `yaml:"jump_strength"` // Upward speed after a flap, px/s
	PipeSpeed    float64 `yaml:"pipe_speed"`    // Leftward pipe speed, px/s
}

// FlappyPipes defines obstacle parameters for Flappy Bird.
type FlappyPipes struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between pipes
}

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Difficulty DifficultyPreset             `yaml:"difficulty"`
	Boards     map[string]MinesweeperBoard `yaml:"boards"`
}

// MinesweeperBoard is one named board layout.
type MinesweeperBoard struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// Board returns the layout for the configured difficulty.
// Unknown or missing names fall back to the built-in preset of that name,
// and finally to beginner.
func (c MinesweeperConfig) Board() MinesweeperBoard {
	name := c.Difficulty
	if name == "" {
		name = DifficultyBeginner
	}
	if b, ok := c.Boards[string(name)]; ok {
		return b
	}
	if b, ok := defaultBoards()[string(name)]; ok {
		return b
	}
	return defaultBoards()[string(DifficultyBeginner)]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyBeginner     DifficultyPreset = "beginner"
	DifficultyIntermediate DifficultyPreset = "intermediate"
	DifficultyExpert       DifficultyPreset = "expert"
	DifficultyCustom       DifficultyPreset = "custom"
)

// MinesweeperPresets lists the selectable presets in menu order.
func MinesweeperPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert}
}

// ParseDifficultyPreset maps a CLI string to a preset.
// The empty string means "use the config file's choice".
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyCustom:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
