package search

import (
	"unicode/utf8"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
)

// Filter owns the query text and the entries of the catalog that match it.
//
// A longer query rebuilds the view from the whole catalog. A shorter query
// only rescans the current view, so entries dropped earlier do not come back
// on backspace. Either way the selection returns to the top row.
type Filter struct {
	entries   []catalog.Entry
	query     string
	view      []int
	selection Selection
}

func NewFilter(entries []catalog.Entry) *Filter {
	f := &Filter{entries: entries}
	f.view = make([]int, len(entries))
	for i := range entries {
		f.view[i] = i
	}
	f.selection = First(len(f.view))
	return f
}

func (f *Filter) Query() string { return f.query }

func (f *Filter) Selection() Selection { return f.selection }

func (f *Filter) Len() int { return len(f.view) }

// View returns the matching entries in catalog order.
func (f *Filter) View() []catalog.Entry {
	out := make([]catalog.Entry, len(f.view))
	for i, idx := range f.view {
		out[i] = f.entries[idx]
	}
	return out
}

// Selected returns the highlighted entry, if any.
func (f *Filter) Selected() (catalog.Entry, bool) {
	i, ok := f.selection.Index()
	if !ok || i < 0 || i >= len(f.view) {
		return catalog.Entry{}, false
	}
	return f.entries[f.view[i]], true
}

func (f *Filter) Type(r rune) {
	f.SetQuery(f.query + string(r))
}

// Erase drops the last character of the query. It is a no-op on an empty
// query.
func (f *Filter) Erase() {
	if f.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.query)
	f.SetQuery(f.query[:len(f.query)-size])
}

// SetQuery replaces the query and reconciles the view based on whether the
// query got longer or shorter.
func (f *Filter) SetQuery(q string) {
	prev := len(f.query)
	f.query = q
	switch {
	case len(q) > prev:
		f.rebuild()
	case len(q) < prev:
		f.narrow()
	default:
		return
	}
	f.selection = First(len(f.view))
}

func (f *Filter) Next() { f.selection = f.selection.Next(len(f.view)) }

func (f *Filter) Previous() { f.selection = f.selection.Previous(len(f.view)) }

func (f *Filter) rebuild() {
	f.view = f.view[:0]
	for i, e := range f.entries {
		if Matches(f.query, e) {
			f.view = append(f.view, i)
		}
	}
}

func (f *Filter) narrow() {
	kept := f.view[:0]
	for _, idx := range f.view {
		if Matches(f.query, f.entries[idx]) {
			kept = append(kept, idx)
		}
	}
	f.view = kept
}
