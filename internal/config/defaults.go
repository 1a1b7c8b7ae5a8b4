package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Game {
	return Game{
		Grid: GridConfig{
			Size:      4,
			SeedTiles: grid.DefaultSeedTiles,
		},
		Win: WinConfig{
			Threshold: engine.DefaultWinThreshold,
		},
		Spawn: SpawnConfig{
			Weights: append(grid.Distribution(nil), grid.DefaultDistribution...),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
