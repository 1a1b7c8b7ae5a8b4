// Package autoplay plays whole games without a terminal, choosing moves
// with a simple policy. It drives the same turn loop as interactive play.
package autoplay

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Policy picks the next move for a board. Implementations return a
// direction that changes g whenever one exists.
type Policy interface {
	Next(g *grid.Grid) engine.Direction
}

// Priority tries directions in a fixed order and takes the first that
// changes the board.
type Priority struct {
	Order []engine.Direction
}

// DefaultPriority keeps large tiles in the bottom-left corner.
var DefaultPriority = Priority{Order: []engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}}

// Next implements Policy.
func (p Priority) Next(g *grid.Grid) engine.Direction {
	order := p.Order
	if len(order) == 0 {
		order = engine.Directions[:]
	}
	for _, dir := range order {
		if engine.CanMove(g, dir) {
			return dir
		}
	}
	return order[0]
}

// Random picks uniformly among the directions that change the board.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random policy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Next implements Policy.
func (r *Random) Next(g *grid.Grid) engine.Direction {
	var open []engine.Direction
	for _, dir := range engine.Directions {
		if engine.CanMove(g, dir) {
			open = append(open, dir)
		}
	}
	if len(open) == 0 {
		return engine.Up
	}
	return open[r.rng.Intn(len(open))]
}

// Greedy looks one move ahead and takes the move with the most merges,
// breaking ties by free cells and then by direction order.
type Greedy struct{}

// Next implements Policy.
func (Greedy) Next(g *grid.Grid) engine.Direction {
	best, bestMerges, bestEmpty := engine.Up, -1, -1
	for _, dir := range engine.Directions {
		res := engine.Apply(g, dir)
		if !res.Changed {
			continue
		}
		empty := res.Grid.EmptyCount()
		if res.Merges > bestMerges || (res.Merges == bestMerges && empty > bestEmpty) {
			best, bestMerges, bestEmpty = dir, res.Merges, empty
		}
	}
	return best
}

// PolicyNames lists the names accepted by NewPolicy.
var PolicyNames = []string{"priority", "random", "greedy"}

// NewPolicy builds a policy by name. seed is used by randomized policies.
func NewPolicy(name string, seed int64) (Policy, error) {
	switch name {
	case "priority":
		return DefaultPriority, nil
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return Greedy{}, nil
	default:
		return nil, fmt.Errorf("autoplay: unknown policy %q (want priority, random or greedy)", name)
	}
}
