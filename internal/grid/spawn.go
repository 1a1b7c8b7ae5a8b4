package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDistribution is returned by Distribution.Validate.
var ErrInvalidDistribution = errors.New("grid: invalid spawn distribution")

// Weighted is one outcome of a spawn draw.
type Weighted struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// Distribution is a discrete weighted choice of spawn values.
type Distribution []Weighted

// DefaultDistribution spawns a 2 six times out of seven and a 4 otherwise.
var DefaultDistribution = Distribution{
	{Value: 2, Weight: 6},
	{Value: 4, Weight: 1},
}

// Validate checks that every value is a power of two no larger than
// MaxTile and the weights are non-negative with a positive total.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no outcomes", ErrInvalidDistribution)
	}
	total := 0
	for _, w := range d {
		if !IsPowerOfTwo(w.Value) {
			return fmt.Errorf("%w: value %d is not a power of two", ErrInvalidDistribution, w.Value)
		}
		if !InRange(w.Value) {
			return fmt.Errorf("%w: value %d exceeds %d", ErrInvalidDistribution, w.Value, MaxTile.Value())
		}
		if w.Weight < 0 {
			return fmt.Errorf("%w: negative weight %d for value %d", ErrInvalidDistribution, w.Weight, w.Value)
		}
		total += w.Weight
	}
	if total == 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidDistribution)
	}
	return nil
}

// MaxValue returns the largest value the distribution can produce.
func (d Distribution) MaxValue() int {
	best := 0
	for _, w := range d {
		if w.Weight > 0 && w.Value > best {
			best = w.Value
		}
	}
	return best
}

// Draw picks a value proportionally to its weight. The distribution must
// be valid.
func (d Distribution) Draw(rng Rand) Tile {
	total := 0
	for _, w := range d {
		total += w.Weight
	}
	n := rng.Intn(total)
	for _, w := range d {
		if n < w.Weight {
			return Tile(w.Value)
		}
		n -= w.Weight
	}
	// unreachable for a valid distribution
	return Tile(d[len(d)-1].Value)
}

// Spawn places one tile drawn from dist into a uniformly random empty
// cell and returns its position. The caller must ensure the grid has an
// empty cell; spawning into a full grid is a logic error and panics.
func (g *Grid) Spawn(dist Distribution, rng Rand) Position {
	if g.IsFull() {
		panic("grid: spawn on full grid")
	}

	var idx int
	for {
		idx = rng.Intn(len(g.cells))
		if g.cells[idx].IsEmpty() {
			break
		}
	}
	g.cells[idx] = dist.Draw(rng)
	return Position{Row: idx / g.size, Col: idx % g.size}
}
