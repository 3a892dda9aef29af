package career

import (
	"reflect"
	"testing"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewCompareSelection()

	s.Toggle("a")
	if !s.Contains("a") || s.Len() != 1 {
		t.Fatalf("expected a to be selected")
	}

	s.Toggle("a")
	if s.Contains("a") || s.Len() != 0 {
		t.Fatalf("expected a to be removed")
	}
}

func TestToggleIsIdempotentUnderAddRemoveAdd(t *testing.T) {
	s := NewCompareSelection()

	s.Toggle("a")
	s.Toggle("a")
	s.Toggle("a")

	if got := s.IDs(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected [a], got %v", got)
	}
}

func TestToggleNeverExceedsThree(t *testing.T) {
	s := NewCompareSelection()

	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")
	s.Toggle("d")

	want := []string{"a", "b", "c"}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected full selection unchanged %v, got %v", want, got)
	}

	// Removing one frees a slot again.
	s.Toggle("b")
	s.Toggle("d")
	want = []string{"a", "c", "d"}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v after freeing a slot, got %v", want, got)
	}
}

func TestResolveFollowsCollectionOrder(t *testing.T) {
	c := NewCollection()
	c.Load([]*Match{
		{ID: "x", Title: "X"},
		{ID: "y", Title: "Y"},
		{ID: "z", Title: "Z"},
	})

	s := NewCompareSelection()
	s.Toggle("z")
	s.Toggle("x")
	s.Toggle("dangling")

	resolved := s.Resolve(c)
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved matches, got %d", len(resolved))
	}
	if resolved[0].ID != "x" || resolved[1].ID != "z" {
		t.Fatalf("expected collection order x,z; got %s,%s", resolved[0].ID, resolved[1].ID)
	}
}
