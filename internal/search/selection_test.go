package search

import "testing"

func TestSelectionWraparound(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for i := 0; i < n; i++ {
			next, ok := SelectAt(i).Next(n).Index()
			if !ok || next != (i+1)%n {
				t.Fatalf("n=%d i=%d: Next=%d,%v want %d", n, i, next, ok, (i+1)%n)
			}
			prev, ok := SelectAt(i).Previous(n).Index()
			if !ok || prev != (i-1+n)%n {
				t.Fatalf("n=%d i=%d: Previous=%d,%v want %d", n, i, prev, ok, (i-1+n)%n)
			}
		}
	}
}

func TestSelectionEmptyView(t *testing.T) {
	if _, ok := SelectAt(2).Next(0).Index(); ok {
		t.Fatalf("Next on empty view must select nothing")
	}
	if _, ok := SelectAt(0).Previous(0).Index(); ok {
		t.Fatalf("Previous on empty view must select nothing")
	}
	if _, ok := First(0).Index(); ok {
		t.Fatalf("First on empty view must select nothing")
	}
}

func TestSelectionFromNothing(t *testing.T) {
	if i, ok := NoSelection().Next(3).Index(); !ok || i != 0 {
		t.Fatalf("Next from nothing=%d,%v want 0", i, ok)
	}
	if i, ok := NoSelection().Previous(3).Index(); !ok || i != 0 {
		t.Fatalf("Previous from nothing=%d,%v want 0", i, ok)
	}
}

func TestSelectionSingleRowWrapsToItself(t *testing.T) {
	s := First(1)
	if i, _ := s.Next(1).Index(); i != 0 {
		t.Fatalf("Next=%d want 0", i)
	}
	if i, _ := s.Previous(1).Index(); i != 0 {
		t.Fatalf("Previous=%d want 0", i)
	}
}
