package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
	"github.com/baaaaaaaka/float-launcher/internal/search"
)

const (
	hintText        = "ENTER: EXEC, UP DOWN: NAV, ESC: QUIT"
	highlightSymbol = ">"
)

// View draws one frame of the launcher.
type View interface {
	Draw(query string, entries []catalog.Entry, sel search.Selection) error
	Sync()
}

type screenView struct {
	screen tcell.Screen
	list   listState
}

func newScreenView(screen tcell.Screen) *screenView {
	return &screenView{screen: screen}
}

func (v *screenView) Sync() { v.screen.Sync() }

func (v *screenView) Draw(query string, entries []catalog.Entry, sel search.Selection) error {
	v.screen.Clear()
	maxX, maxY := v.screen.Size()
	l := computeLayout(maxX, maxY)

	drawSearchBox(v.screen, l.search, query)
	v.drawList(l.list, entries, sel)
	drawHint(v.screen, l.hint)

	cursorX := min(l.search.x+displayWidth(query), max(0, maxX-1))
	v.screen.ShowCursor(cursorX, l.search.y+1)
	v.screen.Show()
	return nil
}

func drawSearchBox(screen tcell.Screen, r rect, query string) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	drawHLine(screen, r.x, r.y, r.w)
	writeText(screen, r.x, r.y+1, query, r.w, tcell.StyleDefault)
	drawHLine(screen, r.x, r.y+r.h-1, r.w)
}

func (v *screenView) drawList(r rect, entries []catalog.Entry, sel search.Selection) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	selected, hasSel := sel.Index()
	if hasSel {
		v.list.ensureVisible(selected, max(1, r.h/itemHeight), len(entries))
	} else {
		v.list.scroll = 0
	}

	// Rows keep a fixed indent for the marker whenever something is selected.
	markerW := 0
	if hasSel {
		markerW = displayWidth(highlightSymbol)
	}
	textX := r.x + markerW
	textW := max(0, r.w-markerW)
	bottom := r.y + r.h

	y := r.y
	for i := v.list.scroll; i < len(entries) && y < bottom; i++ {
		style := tcell.StyleDefault
		if hasSel && i == selected {
			style = style.Reverse(true)
			writeText(v.screen, r.x, y, highlightSymbol, r.w, style)
		}
		writeText(v.screen, textX, y, padRight(entries[i].Name, textW), textW, style.Underline(true))
		if y+1 < bottom {
			writeText(v.screen, textX, y+1, padRight(entries[i].Description, textW), textW, style)
		}
		y += itemHeight
	}
}

func drawHint(screen tcell.Screen, r rect) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	drawHLine(screen, r.x, r.y, r.w)
	if r.h < 2 {
		return
	}
	text := truncate(hintText, r.w)
	writeText(screen, r.x+r.w-displayWidth(text), r.y+1, text, r.w, tcell.StyleDefault)
}

func drawHLine(screen tcell.Screen, x, y, w int) {
	for i := 0; i < w; i++ {
		screen.SetContent(x+i, y, tcell.RuneHLine, nil, tcell.StyleDefault)
	}
}

// writeText draws text starting at (x, y), clipped to width display cells.
func writeText(screen tcell.Screen, x, y int, text string, width int, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			continue
		}
		if offset+chWidth > width {
			return
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += chWidth
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
