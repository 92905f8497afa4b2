package search

import (
	"reflect"
	"testing"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
)

func sampleCatalog() []catalog.Entry {
	return []catalog.Entry{
		{Name: "git status", Description: "show status", Command: "git status", Tags: []string{"git"}},
		{Name: "git commit", Description: "commit staged", Command: "git commit", Tags: []string{"git"}},
		{Name: "ls", Description: "list files", Command: "ls -la", Tags: []string{"files"}},
	}
}

func viewNames(f *Filter) []string {
	names := []string{}
	for _, e := range f.View() {
		names = append(names, e.Name)
	}
	return names
}

func typeString(f *Filter, s string) {
	for _, r := range s {
		f.Type(r)
	}
}

func assertSelection(t *testing.T, f *Filter, want int, wantOK bool) {
	t.Helper()
	got, ok := f.Selection().Index()
	if ok != wantOK || (ok && got != want) {
		t.Fatalf("selection=%d,%v want %d,%v", got, ok, want, wantOK)
	}
}

func TestFilterStartsWithFullCatalog(t *testing.T) {
	f := NewFilter(sampleCatalog())
	want := []string{"git status", "git commit", "ls"}
	if got := viewNames(f); !reflect.DeepEqual(got, want) {
		t.Fatalf("view=%v want %v", got, want)
	}
	assertSelection(t, f, 0, true)
}

func TestFilterEmptyCatalog(t *testing.T) {
	f := NewFilter(nil)
	if f.Len() != 0 {
		t.Fatalf("expected empty view")
	}
	assertSelection(t, f, 0, false)
	if _, ok := f.Selected(); ok {
		t.Fatalf("expected nothing selected")
	}
}

func TestFilterGrowShrinkScenario(t *testing.T) {
	f := NewFilter(sampleCatalog())

	typeString(f, "git")
	if got, want := viewNames(f), []string{"git status", "git commit"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("view=%v want %v", got, want)
	}
	assertSelection(t, f, 0, true)

	f.Type('c')
	if f.Query() != "gitc" || f.Len() != 0 {
		t.Fatalf("query=%q view=%v, want gitc and empty", f.Query(), viewNames(f))
	}
	assertSelection(t, f, 0, false)

	f.Erase()
	if f.Query() != "git" {
		t.Fatalf("query=%q want git", f.Query())
	}
	if f.Len() != 0 {
		t.Fatalf("shrinking must only rescan the current view, got %v", viewNames(f))
	}
	assertSelection(t, f, 0, false)
}

func TestFilterShrinkKeepsNarrowedView(t *testing.T) {
	f := NewFilter(sampleCatalog())
	typeString(f, "git s")
	if got, want := viewNames(f), []string{"git status"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("view=%v want %v", got, want)
	}

	f.Erase()
	if got, want := viewNames(f), []string{"git status"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after erase view=%v want %v", got, want)
	}

	f.Type('c')
	if got, want := viewNames(f), []string{"git commit"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("grow must rescan the whole catalog, got %v", got)
	}
}

func TestFilterRebuildIsIdempotent(t *testing.T) {
	f := NewFilter(sampleCatalog())
	typeString(f, "g")
	f.rebuild()
	first := viewNames(f)
	f.rebuild()
	if second := viewNames(f); !reflect.DeepEqual(first, second) {
		t.Fatalf("rebuild not idempotent: %v then %v", first, second)
	}
}

func TestFilterSelectionResetsOnQueryChange(t *testing.T) {
	f := NewFilter(sampleCatalog())
	f.Next()
	f.Next()
	assertSelection(t, f, 2, true)

	f.Type('l')
	assertSelection(t, f, 0, true)

	f.Next()
	f.Erase()
	assertSelection(t, f, 0, true)
}

func TestFilterNavigationLeavesViewAlone(t *testing.T) {
	f := NewFilter(sampleCatalog())
	f.Previous()
	assertSelection(t, f, 2, true)
	if got, ok := f.Selected(); !ok || got.Command != "ls -la" {
		t.Fatalf("Selected=%#v,%v want ls", got, ok)
	}
	f.Next()
	assertSelection(t, f, 0, true)
	if f.Len() != 3 {
		t.Fatalf("navigation changed the view: %v", viewNames(f))
	}
}

func TestFilterEraseOnEmptyQuery(t *testing.T) {
	f := NewFilter(sampleCatalog())
	f.Next()
	f.Erase()
	if f.Query() != "" {
		t.Fatalf("query=%q", f.Query())
	}
	assertSelection(t, f, 1, true)
}

func TestFilterEraseMultibyteRune(t *testing.T) {
	entries := []catalog.Entry{{Name: "café", Command: "open"}}
	f := NewFilter(entries)
	typeString(f, "café")
	if f.Len() != 1 {
		t.Fatalf("expected match for multibyte query")
	}
	f.Erase()
	if f.Query() != "caf" {
		t.Fatalf("query=%q want caf", f.Query())
	}
}
