// Package config provides YAML-based game configuration loading,
// validation and spawn presets.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Game contains all configuration for a 2048 game.
type Game struct {
	Grid  GridConfig  `yaml:"grid"`
	Win   WinConfig   `yaml:"win"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size      int `yaml:"size"`
	SeedTiles int `yaml:"seed_tiles"`
}

// WinConfig defines when the game is won.
type WinConfig struct {
	Threshold int `yaml:"threshold"`
}

// SpawnConfig defines the value distribution of new tiles.
type SpawnConfig struct {
	Weights grid.Distribution `yaml:"weights"`
}

// Validate reports the first configuration fault found.
func (c Game) Validate() error {
	if c.Grid.Size < grid.MinSize {
		return fmt.Errorf("%w: grid.size %d, need at least %d", ErrInvalid, c.Grid.Size, grid.MinSize)
	}
	if c.Grid.SeedTiles < 1 || c.Grid.SeedTiles > c.Grid.Size*c.Grid.Size {
		return fmt.Errorf("%w: grid.seed_tiles %d does not fit a %dx%d grid",
			ErrInvalid, c.Grid.SeedTiles, c.Grid.Size, c.Grid.Size)
	}
	if err := c.Spawn.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: spawn.weights: %w", ErrInvalid, err)
	}
	if !grid.IsPowerOfTwo(c.Win.Threshold) {
		return fmt.Errorf("%w: win.threshold %d is not a power of two", ErrInvalid, c.Win.Threshold)
	}
	if !grid.InRange(c.Win.Threshold) {
		return fmt.Errorf("%w: win.threshold %d exceeds %d", ErrInvalid, c.Win.Threshold, grid.MaxTile.Value())
	}
	if c.Win.Threshold <= c.Spawn.Weights.MaxValue() {
		return fmt.Errorf("%w: win.threshold %d must exceed the largest spawn value %d",
			ErrInvalid, c.Win.Threshold, c.Spawn.Weights.MaxValue())
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Game) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Clone returns a copy that shares no slices with c.
func (c Game) Clone() Game {
	out := c
	out.Spawn.Weights = append(grid.Distribution(nil), c.Spawn.Weights...)
	return out
}
