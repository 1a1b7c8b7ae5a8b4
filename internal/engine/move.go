package engine

import "github.com/vovakirdan/tui-2048/internal/grid"

// MoveResult is the outcome of applying one direction to a grid.
type MoveResult struct {
	Grid    *grid.Grid // resulting grid, never the input grid
	Changed bool       // any tile merged or moved
	Merges  int
}

// Apply pushes every tile of g toward dir, merging equal neighbours once.
// g is not modified; the result holds a fresh grid.
func Apply(g *grid.Grid, dir Direction) MoveResult {
	out := g.Clone()
	res := MoveResult{Grid: out}

	for i := range out.Size() {
		l := newLine(out, i, dir)
		merges := l.merge()
		moved := l.compact()

		res.Merges += merges
		if merges > 0 || moved {
			res.Changed = true
		}
	}
	return res
}

// CanMove reports whether dir would change g.
func CanMove(g *grid.Grid, dir Direction) bool {
	return Apply(g, dir).Changed
}
