package engine

import "github.com/vovakirdan/tui-2048/internal/grid"

// DefaultWinThreshold is the tile value that ends the game in a win.
const DefaultWinThreshold = 2048

// Status is the derived state of a game. Won and Lost are terminal.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

// String returns a short lowercase name for the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Message is the text shown to the player for a terminal status.
func (s Status) Message() string {
	switch s {
	case Won:
		return "You Win!"
	case Lost:
		return "You SUCK!"
	default:
		return ""
	}
}

// IsWon reports whether any cell holds the winning value.
func IsWon(g *grid.Grid, threshold int) bool {
	return g.Contains(threshold)
}

// IsLost reports whether no direction can change g. It only simulates on
// copies, so g is left untouched.
func IsLost(g *grid.Grid) bool {
	if !g.IsFull() {
		return false
	}
	for _, dir := range Directions {
		if CanMove(g, dir) {
			return false
		}
	}
	return true
}

// Evaluate derives the status of g. A win takes precedence over a loss.
func Evaluate(g *grid.Grid, threshold int) Status {
	switch {
	case IsWon(g, threshold):
		return Won
	case IsLost(g):
		return Lost
	default:
		return Playing
	}
}
