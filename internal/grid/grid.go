package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned (wrapped) by grid constructors.
var (
	ErrTooSmall    = errors.New("grid: too small")
	ErrInvalidTile = errors.New("grid: tile value is not a power of two")
	ErrNotSquare   = errors.New("grid: rows do not form a square")
)

// MinSize is the smallest board dimension accepted by New and Create.
const MinSize = 2

// DefaultSeedTiles is the number of tiles placed when a game starts.
const DefaultSeedTiles = 2

// seedValue is the value of every tile placed by Create.
const seedValue Tile = 2

// Rand is the subset of *math/rand.Rand the grid needs.
type Rand interface {
	Intn(n int) int
}

// Position addresses a cell by 0-based row and column.
type Position struct {
	Row int
	Col int
}

// Grid is an N×N board stored row-major. Every cell always holds a Tile,
// possibly Empty.
type Grid struct {
	size  int
	cells []Tile
}

// New allocates an empty size×size grid.
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: size %d, need at least %d", ErrTooSmall, size, MinSize)
	}
	return &Grid{
		size:  size,
		cells: make([]Tile, size*size),
	}, nil
}

// Create allocates a size×size grid and places seedTiles tiles of value 2
// at distinct random cells. Collisions are resolved by drawing again.
func Create(size, seedTiles int, rng Rand) (*Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	if seedTiles < 0 || seedTiles > size*size {
		return nil, fmt.Errorf("%w: %d seed tiles do not fit a %dx%d grid", ErrTooSmall, seedTiles, size, size)
	}

	for placed := 0; placed < seedTiles; {
		idx := rng.Intn(len(g.cells))
		if !g.cells[idx].IsEmpty() {
			continue
		}
		g.cells[idx] = seedValue
		placed++
	}
	return g, nil
}

// FromRows builds a grid from literal values, 0 meaning empty.
func FromRows(rows [][]int) (*Grid, error) {
	g, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), g.size)
		}
		for c, v := range row {
			t, err := NewTile(v)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %w", r, c, err)
			}
			g.cells[r*g.size+c] = t
		}
	}
	return g, nil
}

// MustFromRows is FromRows for fixtures known to be valid. It panics on error.
func MustFromRows(rows [][]int) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// At returns the tile at (row, col). Out-of-range coordinates panic.
func (g *Grid) At(row, col int) Tile {
	return g.cells[g.index(row, col)]
}

// Set replaces the tile at (row, col).
func (g *Grid) Set(row, col int, t Tile) {
	g.cells[g.index(row, col)] = t
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("grid: position (%d,%d) outside %dx%d grid", row, col, g.size, g.size))
	}
	return row*g.size + col
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// IsFull reports whether no cell is empty.
func (g *Grid) IsFull() bool {
	return g.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, t := range g.cells {
		if t.IsEmpty() {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	total := 0
	for _, t := range g.cells {
		total += t.Value()
	}
	return total
}

// MaxTile returns the highest tile value on the board.
func (g *Grid) MaxTile() int {
	best := 0
	for _, t := range g.cells {
		if t.Value() > best {
			best = t.Value()
		}
	}
	return best
}

// Contains reports whether any cell holds exactly value v.
func (g *Grid) Contains(v int) bool {
	for _, t := range g.cells {
		if t.Value() == v {
			return true
		}
	}
	return false
}

// Rows returns a copy of the cell values, row by row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		for c := range g.size {
			rows[r][c] = g.cells[r*g.size+c].Value()
		}
	}
	return rows
}

// String renders the grid as a right-aligned table, one row per line.
func (g *Grid) String() string {
	width := len(Tile(g.MaxTile()).String())
	var b strings.Builder
	for r := range g.size {
		for c := range g.size {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, g.At(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
