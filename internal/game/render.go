package game

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellHeight   = 2 // Height of each cell (including top border)
	minCellWidth = 5
	hudHeight    = 3
)

// tileColors is indexed by log2 of the tile value.
var tileColors = []core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
}

func tileColor(v int) core.Color {
	if v <= 0 {
		return core.ColorDefault
	}
	i := bits.TrailingZeros(uint(v))
	if i >= len(tileColors) {
		return core.ColorMagenta
	}
	return tileColors[i]
}

// cellWidth fits the widest reachable tile, the win threshold, plus padding.
func (g *Game) cellWidth() int {
	return max(minCellWidth, len(strconv.Itoa(g.cfg.Win.Threshold))+3)
}

// boardSize returns the board footprint including borders.
func (g *Game) boardSize() (w, h int) {
	n := g.cfg.Grid.Size
	return n*g.cellWidth() + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	boardW, boardH := g.boardSize()
	boardX := max(0, (dst.Width()-boardW)/2)
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, move counter and goal.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	goal := fmt.Sprintf("Goal: %d", g.cfg.Win.Threshold)
	dst.DrawTextColored(boardX+(boardW-len(goal))/2, 2, goal, core.ColorGray)
}

// renderBoard draws the N×N grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()
	cw := g.cellWidth()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cw
			py := boardY + y*cellHeight
			dst.Set(px, py, junction(x, y, n))

			if x < n {
				for i := 1; i < cw; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			val := g.board.At(row, col).Value()
			if val == 0 {
				continue
			}
			s := strconv.Itoa(val)
			cellX := boardX + col*cw + 1
			cellY := boardY + row*cellHeight + 1
			pad := max(0, (cw-1-len(s))/2)
			dst.DrawTextColored(cellX+pad, cellY, s, tileColor(val))
		}
	}
}

// junction picks the box-drawing rune for grid line intersection (x, y).
func junction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause and end-of-game overlays over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.status == engine.Won:
		drawOverlay(dst, cx, cy, core.ColorBrightGreen, g.status.Message(),
			fmt.Sprintf("Moves: %d", g.moves), "Press R to restart")
	case g.status == engine.Lost:
		drawOverlay(dst, cx, cy, core.ColorBrightRed, g.status.Message(),
			fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a centered text box; the first line is the headline.
func drawOverlay(dst *core.Screen, cx, cy int, headline core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = headline
		}
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
