// Package config provides YAML-based game configuration loading and
// difficulty presets for t2048.
package config

// GameConfig contains all configuration for a 2048 session.
type GameConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
}

// BoardConfig defines the board shape and win condition.
type BoardConfig struct {
	Size       int `yaml:"size"`        // Grid side length
	StartTiles int `yaml:"start_tiles"` // Tiles spawned when a game starts
	WinTile    int `yaml:"win_tile"`    // Tile value that wins the game
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4 instead of a 2
}

// SanitizeConfig defines how preset boards are cleaned up.
type SanitizeConfig struct {
	ForcePowerOfTwo bool `yaml:"force_power_of_two"` // Round invalid values down instead of zeroing them
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Easy spawns fewer 4s and wins earlier; hard spawns more 4s and
// demands a higher tile.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
		cfg.Board.WinTile = 1024
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.2
		cfg.Board.WinTile = 4096
	case DifficultyNormal:
		cfg.Spawn.FourProbability = 0.1
		cfg.Board.WinTile = 2048
	}
}

// ValidPreset returns true if the preset is one of the known names.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
