// Package engine applies moves to a grid: one merge-and-compact algorithm
// parameterized by direction, plus the win and loss predicates.
package engine

// Direction is the way tiles are pushed in a move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every move in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// vertical reports whether the direction moves tiles along columns.
func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// reversed reports whether the target edge is at the high index end.
func (d Direction) reversed() bool {
	return d == Down || d == Right
}
