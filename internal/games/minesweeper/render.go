package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper/board"
)

// countColors maps adjacency counts 1..8 to the classic palette.
var countColors = [board.MaxCount + 1]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// Glyph returns the rune and color used to draw a cell.
// When lost is set, flags on safe cells are shown as mistakes.
func Glyph(c board.Cell, lost bool) (rune, core.Color) {
	switch c.Visibility() {
	case board.Flagged:
		if lost && !c.IsMine() {
			return 'X', core.ColorRed
		}
		return 'F', core.ColorBrightRed
	case board.Hidden:
		return '·', core.ColorGray
	}

	if c.IsMine() {
		return '*', core.ColorBrightRed
	}
	n := c.Count()
	if n == 0 {
		return ' ', core.ColorDefault
	}
	return rune('0' + n), countColors[n]
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	g.renderBoard(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Cleared!", fmt.Sprintf("Time: %ds  R to restart", g.Seconds()))
	case g.lost:
		g.renderOverlay(dst, "Boom!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Mines: %d  Time: %03d", g.Title(), g.MinesLeft(), g.Seconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderBoard draws the framed grid centered below the HUD.
func (g *Game) renderBoard(dst *core.Screen) {
	frame := core.NewRect(
		(dst.Width()-g.requiredWidth())/2,
		hudHeight,
		g.requiredWidth(),
		g.board.Height()+2,
	)
	dst.DrawBox(frame, core.ColorGray)

	cx, cy := g.board.Cursor()
	inner := frame.Inner()
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			sx := inner.X + x*cellWidth
			sy := inner.Y + y

			r, c := Glyph(*g.board.Get(x, y), g.lost)
			dst.SetColored(sx+1, sy, r, c)

			if x == cx && y == cy && !g.over() {
				dst.SetColored(sx, sy, '[', core.ColorCursor)
				dst.SetColored(sx+1, sy, r, core.ColorCursor)
				dst.SetColored(sx+2, sy, ']', core.ColorCursor)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredIn(dst.Width(), dst.Height(), boxW, 5)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
