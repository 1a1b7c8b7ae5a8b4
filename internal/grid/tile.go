// Package grid holds the N×N tile board and the operations that place
// new tiles on it. It knows nothing about directions or merging; that
// lives in the engine package.
package grid

import (
	"fmt"
	"strconv"
)

// Tile is a single cell value: zero means empty, otherwise a power of two.
// Tiles are values; merging produces a new Tile rather than mutating one.
type Tile uint32

const (
	// Empty is the tile held by a vacant cell.
	Empty Tile = 0
	// MaxTile is the largest power of two a Tile holds. It never merges.
	MaxTile Tile = 1 << 31
)

// NewTile returns the tile for value v. Zero yields Empty.
func NewTile(v int) (Tile, error) {
	if v == 0 {
		return Empty, nil
	}
	if !IsPowerOfTwo(v) {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidTile, v)
	}
	if !InRange(v) {
		return Empty, fmt.Errorf("%w: %d exceeds %d", ErrInvalidTile, v, MaxTile.Value())
	}
	return Tile(v), nil
}

// Value returns the numeric value, 0 for an empty tile.
func (t Tile) Value() int {
	return int(t)
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Equal compares tiles by value. Two empty tiles are equal.
func (t Tile) Equal(other Tile) bool {
	return t.Value() == other.Value()
}

// CanDouble reports whether t can merge with an equal tile.
func (t Tile) CanDouble() bool {
	return !t.IsEmpty() && t < MaxTile
}

// Double returns the tile produced by merging t with an equal tile.
// It panics if t cannot double.
func (t Tile) Double() Tile {
	if !t.CanDouble() {
		panic(fmt.Sprintf("grid: cannot double tile %d", t.Value()))
	}
	return t * 2
}

// String returns the value as text, or "." for an empty cell.
func (t Tile) String() string {
	if t.IsEmpty() {
		return "."
	}
	return strconv.Itoa(t.Value())
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// InRange reports whether v fits in a Tile.
func InRange(v int) bool {
	return v >= 0 && uint64(v) <= uint64(MaxTile)
}
