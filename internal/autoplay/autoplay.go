package autoplay

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// ErrStalled is returned when a policy picks a move that changes nothing
// while the game is still playable.
var ErrStalled = errors.New("autoplay: policy chose a blocked move")

// Result summarizes one finished (or stopped) game.
type Result struct {
	Seed    int64
	Status  engine.Status
	Moves   int
	MaxTile int
	Grid    *grid.Grid
}

// Run plays one game headless. It stops when the game ends, after
// maxMoves moves (0 means no limit) or when ctx is canceled; in the last
// case the partial result is returned with ctx's error.
func Run(ctx context.Context, cfg config.Game, p Policy, seed int64, maxMoves int, opts ...game.Option) (Result, error) {
	g := game.New(cfg, opts...)
	if err := g.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
		return Result{}, fmt.Errorf("autoplay: %w", err)
	}

	frame := core.NewInputFrame()
	for !g.Status().Terminal() {
		if maxMoves > 0 && g.Moves() >= maxMoves {
			break
		}
		if err := ctx.Err(); err != nil {
			return result(g), err
		}

		dir := p.Next(g.Grid())
		frame.Clear()
		frame.Set(actionFor(dir))
		if res := g.Step(frame); !res.Moved {
			return result(g), fmt.Errorf("%w: %v after %d moves", ErrStalled, dir, g.Moves())
		}
	}
	return result(g), nil
}

func result(g *game.Game) Result {
	board := g.Grid()
	return Result{
		Seed:    g.Seed(),
		Status:  g.Status(),
		Moves:   g.Moves(),
		MaxTile: board.MaxTile(),
		Grid:    board,
	}
}

func actionFor(dir engine.Direction) core.Action {
	switch dir {
	case engine.Up:
		return core.ActionUp
	case engine.Down:
		return core.ActionDown
	case engine.Left:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
