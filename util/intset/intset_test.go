package intset

import (
	"sort"
	"testing"
)

func checkItems(t *testing.T, s *Set, items []int) {
	t.Helper()
	got := s.ToSlice()
	if len(got) != len(items) {
		t.Fatalf("expecting %v, got %v", items, got)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("expecting %v, got %v", items, got)
		}
	}
	if s.Len() != len(items) {
		t.Fatalf("expecting len %d, got %d", len(items), s.Len())
	}
}

func TestEmpty(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Fatal("expecting empty set")
	}
	if s.Contains(0) || s.Contains(100) {
		t.Fatal("unexpected items in empty set")
	}
	checkItems(t, s, []int{})
}

func TestAddContains(t *testing.T) {
	items := []int{0, 5, 63, 64, 65, 300, -2, -100}
	s := New(items...)
	for _, item := range items {
		if !s.Contains(item) {
			t.Fatalf("missing item %d", item)
		}
	}
	for _, item := range []int{1, 62, 66, 299, 301, -1, -99} {
		if s.Contains(item) {
			t.Fatalf("unexpected item %d", item)
		}
	}

	sorted := append([]int{}, items...)
	sort.Ints(sorted)
	checkItems(t, s, sorted)
}

func TestAddDuplicates(t *testing.T) {
	s := New(7, 7, 7, 2)
	checkItems(t, s, []int{2, 7})
}

func TestClear(t *testing.T) {
	s := New(1, 200, -50)
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("expecting empty set after Clear")
	}
	checkItems(t, s, []int{})

	s.Add(42)
	checkItems(t, s, []int{42})
}

func TestGrow(t *testing.T) {
	s := New(100)
	s.Add(1000).Add(-1000).Add(0)
	checkItems(t, s, []int{-1000, 0, 100, 1000})
}
