package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// BoardLabel formats a grid size as the label used for score storage,
// e.g. "4x4".
func BoardLabel(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// tileColor picks a foreground color for a tile value. Higher tiles get
// warmer colors so progress is visible at a glance.
func tileColor(val int) core.Color {
	switch {
	case val >= 2048:
		return core.ColorBrightYellow
	case val >= 1024:
		return core.ColorYellow
	case val >= 512:
		return core.ColorBrightRed
	case val >= 256:
		return core.ColorRed
	case val >= 128:
		return core.ColorOrange
	case val >= 64:
		return core.ColorBrightMagenta
	case val >= 32:
		return core.ColorMagenta
	case val >= 16:
		return core.ColorBrightCyan
	case val >= 8:
		return core.ColorCyan
	case val >= 4:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// boardPixelSize returns the rendered width and height of the grid.
func boardPixelSize(size int) (int, int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// DrawGame renders a full game frame (HUD, grid, overlays) to the screen.
func DrawGame(dst *core.Screen, snap engine.Snapshot, highScore int) {
	dst.Clear()

	boardW, boardH := boardPixelSize(snap.Size)
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+2 {
		drawTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	drawHUD(dst, snap, highScore, boardX, boardW)
	drawBoard(dst, snap, boardX, boardY)
	drawOverlays(dst, snap, boardX, boardY, boardW, boardH)
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawHUD draws the title, score and max tile info.
func drawHUD(dst *core.Screen, snap engine.Snapshot, highScore, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(boardX, 1, scoreStr)

	if highScore > 0 {
		bestStr := fmt.Sprintf("Best: %d", highScore)
		dst.DrawTextColored(boardX, 2, bestStr, core.ColorGray)
	}

	infoStr := fmt.Sprintf("Max: %d", snap.MaxTile)
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)
}

// drawBoard draws the grid with tiles.
func drawBoard(dst *core.Screen, snap engine.Snapshot, boardX, boardY int) {
	size := snap.Size

	// Draw grid borders
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := range size {
		for x := range size {
			val := snap.Grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// drawOverlays draws end-of-game overlays.
func drawOverlays(dst *core.Screen, snap engine.Snapshot, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch snap.Status {
	case engine.StatusWon:
		drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case engine.StatusLost:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", snap.MaxTile), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints shown below the board.
func Controls() string {
	return "Arrow keys/WASD: Move | R: Restart | Tab: Scores | Q: Quit"
}
