package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Moves    int
	Merges   int
	Size     int
	Cells    [][]int
	MaxTile  int
	Status   engine.Status
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Moves:    g.moves,
		Merges:   g.merges,
		Status:   g.status,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.board != nil {
		s.Size = g.board.Size()
		s.Cells = g.board.Rows()
		s.MaxTile = g.board.MaxTile()
	}
	return s
}
