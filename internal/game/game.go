// Package game runs the 2048 turn loop. It owns the single live grid,
// turns input frames into moves, spawns tiles and tracks the game status.
// It has no terminal dependencies; the platform layer drives it.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Game implements the 2048 puzzle.
type Game struct {
	cfg    config.Game
	logger *log.Logger
	rng    *rand.Rand
	seed   int64
	tick   uint64

	board  *grid.Grid
	status engine.Status
	moves  int
	merges int

	lastSpawn grid.Position
	spawned   bool // lastSpawn is valid

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and status events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game for cfg. Reset must be called before the first Step.
func New(cfg config.Game, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg.Clone(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("game: reset: %w", err)
	}

	rng := rand.New(rand.NewSource(rc.Seed))
	board, err := grid.Create(g.cfg.Grid.Size, g.cfg.Grid.SeedTiles, rng)
	if err != nil {
		return fmt.Errorf("game: reset: %w", err)
	}

	g.rng = rng
	g.seed = rc.Seed
	g.tick = 0
	g.board = board
	g.status = engine.Evaluate(board, g.cfg.Win.Threshold)
	g.moves = 0
	g.merges = 0
	g.spawned = false
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	g.logger.Debug("new game", "seed", rc.Seed, "size", g.cfg.Grid.Size, "win", g.cfg.Win.Threshold)
	return nil
}

// Resize updates the screen dimensions without touching the board.
// A zero-sized screen means headless play and disables the size guard.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if w == 0 && h == 0 {
		g.tooSmall = false
		return
	}
	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW+2 || h < hudHeight+boardH+1
}

// Step advances the game by one tick. At most one move is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.status.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Won and lost boards ignore moves; restart is handled by the platform.
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in.Direction())
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.Move(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// Move applies one move. A move that changes the board spawns a tile when
// a cell is free and then re-evaluates the status. A move that changes
// nothing leaves the board, the RNG and the counters alone.
func (g *Game) Move(dir engine.Direction) bool {
	if g.board == nil || g.status.Terminal() {
		return false
	}

	res := engine.Apply(g.board, dir)
	if !res.Changed {
		g.logger.Debug("blocked move", "dir", dir)
		return false
	}

	g.board = res.Grid
	g.moves++
	g.merges += res.Merges
	g.spawned = false
	if !g.board.IsFull() {
		g.lastSpawn = g.board.Spawn(g.cfg.Spawn.Weights, g.rng)
		g.spawned = true
	}

	g.status = engine.Evaluate(g.board, g.cfg.Win.Threshold)
	g.logger.Debug("move", "dir", dir, "merges", res.Merges, "moves", g.moves)
	if g.status.Terminal() {
		g.logger.Info("game over", "status", g.status, "moves", g.moves, "max", g.board.MaxTile())
	}
	return true
}

// directionFor maps a directional action onto an engine direction.
func directionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.Up, true
	case core.ActionDown:
		return engine.Down, true
	case core.ActionLeft:
		return engine.Left, true
	case core.ActionRight:
		return engine.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.status.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Status returns the derived status of the board.
func (g *Game) Status() engine.Status {
	return g.status
}

// Cell returns the tile value at row, col; 0 means empty.
func (g *Game) Cell(row, col int) int {
	return g.board.At(row, col).Value()
}

// Grid returns a copy of the live board.
func (g *Game) Grid() *grid.Grid {
	if g.board == nil {
		return nil
	}
	return g.board.Clone()
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Game {
	return g.cfg.Clone()
}
