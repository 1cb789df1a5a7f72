package colorcascade

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/color-cascade/internal/cascade"
	"github.com/vovakirdan/color-cascade/internal/core"
)

const (
	shapeW    = 8
	shapeH    = 3
	shapeChar = '█'
	tapChar   = '●'
	groundChr = '▀'
	hudHeight = 2
	tapHeight = 3 // Ground line, tap targets and key hints
	minWidth  = 40
	minHeight = 14
)

// tapKeys are the number keys shown next to each tap target, in
// FullPalette order.
var tapKeys = map[cascade.Color]string{
	cascade.ColorRed:    "1",
	cascade.ColorYellow: "2",
	cascade.ColorBlue:   "3",
	cascade.ColorPurple: "4",
	cascade.ColorOrange: "5",
	cascade.ColorGreen:  "6",
}

// ScreenColor maps a game color to the terminal color used to draw it.
func ScreenColor(c cascade.Color) core.Color {
	switch c {
	case cascade.ColorRed:
		return core.ColorRed
	case cascade.ColorYellow:
		return core.ColorYellow
	case cascade.ColorBlue:
		return core.ColorBlue
	case cascade.ColorPurple:
		return core.ColorPurple
	case cascade.ColorOrange:
		return core.ColorOrange
	case cascade.ColorGreen:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minWidth || dst.Height() < minHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal", core.ColorGray)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	laneTop := hudHeight
	groundY := dst.Height() - tapHeight

	g.renderHUD(dst)
	dst.DrawHLine(0, groundY, dst.Width(), groundChr, core.ColorGray)

	if snap.Active {
		g.renderShape(dst, snap, laneTop, groundY)
	}
	g.renderTapTargets(dst, snap, groundY+1)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best combo: %d  |  R: restart", g.finalScore, g.bestCombo))
	case !g.started:
		g.drawCenteredMessage(dst, "COLOR CASCADE", "Press Space to start")
	}
}

// renderHUD draws score, combo and difficulty on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(2, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	combo := fmt.Sprintf("Combo x%d", g.combo)
	dst.DrawTextCentered(0, combo, core.ColorYellow)

	level := fmt.Sprintf("Speed %3.0f%%", g.difficulty.Level(g.score, int(g.tick))*100)
	dst.DrawTextColor(dst.Width()-len(level)-2, 0, level, core.ColorGray)
}

// renderShape draws the falling shape between the HUD and the ground.
func (g *Game) renderShape(dst *core.Screen, snap cascade.Snapshot, top, ground int) {
	travel := ground - top - shapeH
	if travel < 0 {
		travel = 0
	}
	y := top + int(g.progress()*float64(travel))
	x := (dst.Width() - shapeW) / 2

	color := ScreenColor(snap.Current)
	dst.FillRect(core.NewRect(x, y, shapeW, shapeH), shapeChar, color)

	// Name the color beside the shape; some terminals blur the composites.
	dst.DrawTextColor(x+shapeW+2, y+shapeH/2, snap.Current.String(), color)
}

// renderTapTargets draws one target per palette color with its key. Colors
// tapped in the open window are bracketed.
func (g *Game) renderTapTargets(dst *core.Screen, snap cascade.Snapshot, y int) {
	selected := cascade.NewColorSet(snap.Selected...)

	parts := make([]string, 0, len(snap.Palette))
	for _, c := range snap.Palette {
		parts = append(parts, targetLabel(c, selected.Has(c)))
	}
	width := len([]rune(strings.Join(parts, "  ")))
	x := (dst.Width() - width) / 2

	for i, c := range snap.Palette {
		label := parts[i]
		dst.DrawTextColor(x, y, label, ScreenColor(c))
		x += len([]rune(label)) + 2
	}

	dst.DrawTextCentered(y+1, "1-6: tap  P: pause  Esc: menu", core.ColorGray)
}

func targetLabel(c cascade.Color, selected bool) string {
	label := fmt.Sprintf("%s %c %s", tapKeys[c], tapChar, c)
	if selected {
		return "[" + label + "]"
	}
	return " " + label + " "
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(y+3, subtitle, core.ColorWhite)
}
