package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultGameConfig returns the default 2048 configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:       4,
			StartTiles: 2,
			WinTile:    2048,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Sanitize: SanitizeConfig{
			ForcePowerOfTwo: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
