package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const testSeed = 12345

// newTestGame resets a game and then replaces its board with rows.
func newTestGame(t *testing.T, cfg config.Game, rows [][]int) *Game {
	t.Helper()
	g := New(cfg)
	if err := g.Reset(core.RuntimeConfig{Seed: testSeed}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if rows != nil {
		g.board = grid.MustFromRows(rows)
		g.status = engine.Evaluate(g.board, cfg.Win.Threshold)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func countTiles(cells [][]int) int {
	n := 0
	for _, row := range cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func sameCells(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestResetDeterministic(t *testing.T) {
	a := New(config.Default())
	b := New(config.Default())
	if err := a.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatal(err)
	}
	if err := b.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatal(err)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if !sameCells(sa.Cells, sb.Cells) {
		t.Errorf("same seed produced different boards:\n%v\n%v", sa.Cells, sb.Cells)
	}
	if n := countTiles(sa.Cells); n != grid.DefaultSeedTiles {
		t.Errorf("seeded %d tiles, want %d", n, grid.DefaultSeedTiles)
	}
	if sa.Status != engine.Playing {
		t.Errorf("status = %v, want playing", sa.Status)
	}

	for _, dir := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		a.Step(frame(dir))
		b.Step(frame(dir))
	}
	if !sameCells(a.Snapshot().Cells, b.Snapshot().Cells) {
		t.Error("same seed and input diverged")
	}
}

func TestResetInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Size = 1
	err := New(cfg).Reset(core.RuntimeConfig{})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Reset = %v, want ErrInvalid", err)
	}
}

func TestBlockedMoveSpawnsNothing(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(t, cfg, [][]int{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Snapshot()

	res := g.Step(frame(core.ActionUp))
	if res.Moved {
		t.Error("blocked move reported Moved")
	}
	after := g.Snapshot()
	if !sameCells(before.Cells, after.Cells) {
		t.Errorf("blocked move changed board:\n%v", after.Cells)
	}
	if after.Moves != 0 {
		t.Errorf("moves = %d, want 0", after.Moves)
	}

	// The RNG must sit exactly where Reset left it.
	ref := rand.New(rand.NewSource(testSeed))
	if _, err := grid.Create(cfg.Grid.Size, cfg.Grid.SeedTiles, ref); err != nil {
		t.Fatal(err)
	}
	if got, want := g.rng.Int63(), ref.Int63(); got != want {
		t.Error("blocked move consumed random numbers")
	}
}

func TestChangedMoveSpawnsOneTile(t *testing.T) {
	g := newTestGame(t, config.Default(), [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))
	if !res.Moved {
		t.Fatal("merge move did not report Moved")
	}
	snap := g.Snapshot()
	if snap.Cells[0][0] != 4 {
		t.Errorf("cell (0,0) = %d, want 4", snap.Cells[0][0])
	}
	if n := countTiles(snap.Cells); n != 2 {
		t.Errorf("tiles after move = %d, want merged tile plus one spawn", n)
	}
	if sum := g.Grid().Sum(); sum != 6 && sum != 8 {
		t.Errorf("sum = %d, want 4 plus a 2 or 4 spawn", sum)
	}
	if snap.Moves != 1 || snap.Merges != 1 {
		t.Errorf("moves/merges = %d/%d, want 1/1", snap.Moves, snap.Merges)
	}
}

func TestOneMovePerStep(t *testing.T) {
	g := newTestGame(t, config.Default(), [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 2, 0, 0},
	})

	// Up wins over Left; applying both would merge the row.
	g.Step(frame(core.ActionLeft, core.ActionUp))
	if g.Cell(0, 0) != 2 || g.Cell(0, 1) != 2 {
		t.Errorf("top row = %d %d, want 2 2", g.Cell(0, 0), g.Cell(0, 1))
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
}

func TestEmptyFrameIsNoop(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	before := g.Snapshot()
	res := g.Step(core.NewInputFrame())
	if res.Moved {
		t.Error("empty frame moved")
	}
	if !sameCells(before.Cells, g.Snapshot().Cells) {
		t.Error("empty frame changed board")
	}
}

func TestWinDetection(t *testing.T) {
	g := newTestGame(t, config.Default(), [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))
	if g.Status() != engine.Won {
		t.Fatalf("status = %v, want won", g.Status())
	}
	if !res.State.GameOver {
		t.Error("won game not reported as GameOver")
	}
	if g.Status().Message() != "You Win!" {
		t.Errorf("message = %q", g.Status().Message())
	}
}

// lossRows leaves one free cell that a right move fills with a 16.
var lossRows = [][]int{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{8, 4, 2, 0},
}

func lossConfig() config.Game {
	cfg := config.Default()
	cfg.Spawn.Weights = grid.Distribution{{Value: 16, Weight: 1}}
	return cfg
}

func TestLossDetection(t *testing.T) {
	g := newTestGame(t, lossConfig(), lossRows)

	res := g.Step(frame(core.ActionRight))
	if !res.Moved {
		t.Fatal("right move did not change board")
	}
	if g.Cell(3, 0) != 16 {
		t.Fatalf("spawn at (3,0) = %d, want 16", g.Cell(3, 0))
	}
	if g.Status() != engine.Lost {
		t.Fatalf("status = %v, want lost\n%v", g.Status(), g.Grid())
	}
	if g.Status().Message() != "You SUCK!" {
		t.Errorf("message = %q", g.Status().Message())
	}
}

func TestTerminalDiscardsInput(t *testing.T) {
	g := newTestGame(t, lossConfig(), lossRows)
	g.Step(frame(core.ActionRight))
	if g.Status() != engine.Lost {
		t.Fatalf("setup: status = %v", g.Status())
	}

	before := g.Snapshot()
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionPause} {
		if res := g.Step(frame(a)); res.Moved {
			t.Errorf("%v moved on a finished game", a)
		}
	}
	after := g.Snapshot()
	if !sameCells(before.Cells, after.Cells) || after.Moves != before.Moves {
		t.Error("finished game changed")
	}
	if after.Paused {
		t.Error("finished game accepted pause")
	}
	if g.Move(engine.Left) {
		t.Error("Move on finished game returned true")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, config.Default(), [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if res := g.Step(frame(core.ActionPause)); !res.State.Paused {
		t.Fatal("pause not applied")
	}
	if res := g.Step(frame(core.ActionLeft)); res.Moved {
		t.Error("paused game moved")
	}
	if res := g.Step(frame(core.ActionPause)); res.State.Paused {
		t.Fatal("pause not released")
	}
	if res := g.Step(frame(core.ActionLeft)); !res.Moved {
		t.Error("unpaused game did not move")
	}
}

func TestTooSmallBlocksMoves(t *testing.T) {
	g := New(config.Default())
	if err := g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}); err != nil {
		t.Fatal(err)
	}
	if !g.State().Paused {
		t.Error("small screen not reported as paused")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("render:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize did not clear the size guard")
	}
}

func TestRenderStatusMessages(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Game
		rows  [][]int
		input core.Action
		want  string
	}{
		{
			name: "win",
			cfg:  config.Default(),
			rows: [][]int{
				{1024, 1024, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			input: core.ActionLeft,
			want:  "You Win!",
		},
		{
			name:  "loss",
			cfg:   lossConfig(),
			rows:  lossRows,
			input: core.ActionRight,
			want:  "You SUCK!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.cfg, tt.rows)
			g.Resize(80, 24)
			g.Step(frame(tt.input))

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			out := screen.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("render missing %q:\n%s", tt.want, out)
			}
			if !strings.Contains(out, "Press R to restart") {
				t.Errorf("render missing restart hint:\n%s", out)
			}
		})
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, config.Default(), [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2048},
	})
	g.Resize(80, 24)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Goal: 2048", "Moves: 0", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	rows := strings.Split(out, "\n")
	for y, row := range rows {
		x := strings.Index(row, " 2 ")
		if x < 0 {
			continue
		}
		x = len([]rune(row[:x+1]))
		if c := screen.GetCell(x, y); c.Color != tileColor(2) {
			t.Errorf("tile 2 color = %v, want %v", c.Color, tileColor(2))
		}
		break
	}
}

func TestTileColor(t *testing.T) {
	if tileColor(0) != core.ColorDefault {
		t.Error("empty cell should be uncolored")
	}
	if tileColor(2) == tileColor(4) {
		t.Error("2 and 4 share a color")
	}
	if tileColor(1<<16) != core.ColorMagenta {
		t.Error("large tiles should fall back to magenta")
	}
}
