package tui

type rect struct {
	y int
	x int
	h int
	w int
}

type layout struct {
	search rect
	list   rect
	hint   rect
}

const (
	searchHeight = 3
	hintHeight   = 2

	// Each list item takes a name line and a description line.
	itemHeight = 2
)

func computeLayout(maxX, maxY int) layout {
	w := max(0, maxX-2)
	listH := max(0, maxY-searchHeight-hintHeight)
	return layout{
		search: rect{y: 0, x: 1, h: searchHeight, w: w},
		list:   rect{y: searchHeight, x: 1, h: listH, w: w},
		hint:   rect{y: searchHeight + listH, x: 1, h: hintHeight, w: w},
	}
}

type listState struct {
	scroll int
}

// ensureVisible adjusts the scroll offset so that the selected item lies
// within a window of viewItems items.
func (s *listState) ensureVisible(selected, viewItems, nItems int) {
	if nItems <= 0 || viewItems <= 0 {
		s.scroll = 0
		return
	}
	if selected < s.scroll {
		s.scroll = selected
	} else if selected >= s.scroll+viewItems {
		s.scroll = selected - viewItems + 1
	}
	s.scroll = clamp(s.scroll, 0, max(0, nItems-viewItems))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
