package search

// Selection is the highlighted position in the filtered view. The zero
// value selects nothing.
type Selection struct {
	index int
	ok    bool
}

func NoSelection() Selection { return Selection{} }

func SelectAt(i int) Selection { return Selection{index: i, ok: true} }

// First selects the top row of a view with n rows, or nothing when n is 0.
func First(n int) Selection {
	if n <= 0 {
		return Selection{}
	}
	return SelectAt(0)
}

func (s Selection) Index() (int, bool) { return s.index, s.ok }

// Next moves one row down, wrapping from the last row to the first.
func (s Selection) Next(n int) Selection {
	if n <= 0 {
		return Selection{}
	}
	if !s.ok {
		return SelectAt(0)
	}
	if s.index >= n-1 {
		return SelectAt(0)
	}
	return SelectAt(s.index + 1)
}

// Previous moves one row up, wrapping from the first row to the last.
func (s Selection) Previous(n int) Selection {
	if n <= 0 {
		return Selection{}
	}
	if !s.ok {
		return SelectAt(0)
	}
	if s.index <= 0 {
		return SelectAt(n - 1)
	}
	return SelectAt(min(s.index, n) - 1)
}
