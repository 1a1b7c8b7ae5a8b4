package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Preset is a named spawn difficulty.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard}

// presetWeights maps each preset to its spawn distribution.
// Heavier 4-weights fill the board faster.
var presetWeights = map[Preset]grid.Distribution{
	PresetEasy:   {{Value: 2, Weight: 9}, {Value: 4, Weight: 1}},
	PresetNormal: {{Value: 2, Weight: 6}, {Value: 4, Weight: 1}},
	PresetHard:   {{Value: 2, Weight: 3}, {Value: 4, Weight: 1}},
}

// ApplyPreset replaces the spawn weights with those of the preset.
// An empty preset leaves the config untouched.
func (c *Game) ApplyPreset(p Preset) error {
	if p == "" {
		return nil
	}
	weights, ok := presetWeights[p]
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, p)
	}
	c.Spawn.Weights = append(grid.Distribution(nil), weights...)
	return nil
}

// ApplyOverrides sets the grid size and win threshold from command-line
// values. Zero leaves the corresponding setting unchanged.
func (c *Game) ApplyOverrides(size, threshold int) {
	if size > 0 {
		c.Grid.Size = size
	}
	if threshold > 0 {
		c.Win.Threshold = threshold
	}
}
