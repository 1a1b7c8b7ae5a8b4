package engine

import "github.com/vovakirdan/tui-2048/internal/grid"

// line is one row or column of a grid viewed in move order: logical index
// 0 is the edge tiles are pushed toward.
type line struct {
	g        *grid.Grid
	fixed    int // row for horizontal moves, column for vertical ones
	vertical bool
	reverse  bool
}

func newLine(g *grid.Grid, fixed int, dir Direction) line {
	return line{
		g:        g,
		fixed:    fixed,
		vertical: dir.vertical(),
		reverse:  dir.reversed(),
	}
}

func (l line) len() int {
	return l.g.Size()
}

// cell maps logical index i to a physical (row, col).
func (l line) cell(i int) (row, col int) {
	if l.reverse {
		i = l.len() - 1 - i
	}
	if l.vertical {
		return i, l.fixed
	}
	return l.fixed, i
}

func (l line) get(i int) grid.Tile {
	r, c := l.cell(i)
	return l.g.At(r, c)
}

func (l line) set(i int, t grid.Tile) {
	r, c := l.cell(i)
	l.g.Set(r, c, t)
}

// merge combines each tile with the next non-empty tile ahead of it when
// the values match. A tile merges at most once; an unequal tile blocks,
// as does a pair of grid.MaxTile tiles.
// Returns the number of merges.
func (l line) merge() int {
	merges := 0
	n := l.len()
	for i := 0; i < n; i++ {
		src := l.get(i)
		if src.IsEmpty() {
			continue
		}
		for j := i + 1; j < n; j++ {
			next := l.get(j)
			if next.IsEmpty() {
				continue
			}
			if next.Equal(src) && src.CanDouble() {
				l.set(i, src.Double())
				l.set(j, grid.Empty)
				merges++
			}
			break
		}
	}
	return merges
}

// compact slides non-empty tiles toward index 0 keeping their order.
// Returns whether any tile changed position.
func (l line) compact() bool {
	moved := false
	write := 0
	for read := 0; read < l.len(); read++ {
		t := l.get(read)
		if t.IsEmpty() {
			continue
		}
		if read != write {
			l.set(write, t)
			l.set(read, grid.Empty)
			moved = true
		}
		write++
	}
	return moved
}
