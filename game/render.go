package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/otov4its/pysnake/arena"
	"github.com/otov4its/pysnake/rules"
)

// Screen layout: the stats line on the first row, the menu on the last one
// and the arena window in between, inset by one column on each side.
const (
	statsRow  = 0
	areaTop   = 1
	areaLeft  = 1
	minScreen = 5
)

// look returns how cell c is drawn.
func (g *Game) look(c arena.Cell) (rune, Attr) {
	switch c.Kind {
	case arena.Snake:
		return g.glyphs[arena.Snake], AttrDefault
	case arena.Food:
		return g.glyphs[arena.Food], FoodAttr(c.Color)
	case arena.Border:
		return g.glyphs[arena.Border], AttrDefault
	default:
		return g.glyphs[arena.Empty], AttrDefault
	}
}

// render draws the changed cells and the stats line, then commits.
func (g *Game) render() {
	g.renderArena()
	g.renderStats()
	g.surface.Commit()
}

func (g *Game) renderArena() {
	for c := range g.arena.Grid().DrainTouched() {
		r, attr := g.look(c)
		for row, col := range g.zoom.Block(c.X, c.Y) {
			g.surface.DrawCell(areaTop+row, areaLeft+col, r, attr)
		}
	}
}

func (g *Game) statsLine() string {
	s := fmt.Sprintf("Score: %04d | Speed: %03d", rules.Score(g.arena), g.rules.Speed())
	return fmt.Sprintf("%*s", g.areaW-1, s)
}

func (g *Game) renderStats() {
	g.drawText(statsRow, areaLeft, g.statsLine(), AttrStats, g.areaW)
}

func (g *Game) menuLine() string {
	return fmt.Sprintf("%c: Quit, %c: New Game, %c: Pause, %c/%c/%c: Zoom in/out/auto, %c: Rewind",
		g.keys.Rune(ActionQuit),
		g.keys.Rune(ActionNewGame),
		g.keys.Rune(ActionPause),
		g.keys.Rune(ActionZoomIn),
		g.keys.Rune(ActionZoomOut),
		g.keys.Rune(ActionAutoZoom),
		g.keys.Rune(ActionRewind),
	)
}

func (g *Game) renderMenu() {
	g.drawText(g.screenH-1, areaLeft, g.menuLine(), AttrMenu, g.areaW-1)
}

// drawText draws s at (row, col), cut to at most width characters.
func (g *Game) drawText(row, col int, s string, attr Attr, width int) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		g.surface.DrawCell(row, col+i, r, attr)
		i++
	}
}

// popup draws a framed message centred over the arena window and commits.
// The box is clipped to the window; text that does not fit is cut.
func (g *Game) popup(msg string) {
	lines := strings.Split(msg, "\n")
	textW := 0
	for _, l := range lines {
		textW = max(textW, utf8.RuneCountInString(l))
	}
	boxW := min(textW+4, g.areaW)
	boxH := min(len(lines)+2, g.areaH)
	textW = max(0, boxW-4)
	lines = lines[:min(len(lines), max(0, boxH-2))]
	top := areaTop + (g.areaH-boxH)/2
	left := areaLeft + (g.areaW-boxW)/2

	for row := 0; row < boxH; row++ {
		for col := 0; col < boxW; col++ {
			g.surface.DrawCell(top+row, left+col, frameRune(row, col, boxW, boxH), AttrDefault)
		}
	}
	for i, l := range lines {
		pad := max(0, textW-utf8.RuneCountInString(l)) / 2
		g.drawText(top+1+i, left+2+pad, l, AttrPopup, textW)
	}
	g.surface.Commit()
}

func frameRune(row, col, w, h int) rune {
	top, bottom := row == 0, row == h-1
	first, last := col == 0, col == w-1
	switch {
	case top && first:
		return '┌'
	case top && last:
		return '┐'
	case bottom && first:
		return '└'
	case bottom && last:
		return '┘'
	case top || bottom:
		return '─'
	case first || last:
		return '│'
	}
	return ' '
}

// closePopup schedules the arena window for a full redraw.
func (g *Game) closePopup() {
	g.arena.Grid().TouchAll()
	g.render()
}
